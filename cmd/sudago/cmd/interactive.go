package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hiraoka/sudago/internal/tui"
	"github.com/hiraoka/sudago/tokenizer"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for exploring tokenization.

Controls:
  Enter   Tokenize the entered text
  Tab     Cycle segmentation mode (A/B/C)
  Ctrl+Y  Copy morphemes as JSON to the clipboard
  Esc     Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	mode, err := segmentationMode()
	if err != nil {
		return err
	}

	tok, err := tokenizer.New(tokenizerConfig())
	if err != nil {
		return err
	}

	return tui.Run(tok, mode)
}
