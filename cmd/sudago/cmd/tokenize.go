package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/hiraoka/sudago/internal/export"
	"github.com/hiraoka/sudago/tokenizer"
)

var (
	tokenizeOutput string
	tokenizeDB     string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Segment Japanese text into morphemes",
	Long: `Segment Japanese text into morphemes and print them as a table or
as JSON. Text is read from the arguments, or from stdin when none are
given.

Examples:
  sudago tokenize 東京都へ行く
  sudago tokenize --mode A 外国人参政権
  echo 吾輩は猫である | sudago tokenize -o json
  sudago tokenize --sqlite corpus.db 長い文章`,
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeOutput, "output", "o", "table", "output format: table or json")
	tokenizeCmd.Flags().StringVar(&tokenizeDB, "sqlite", "", "also append the result to a SQLite database at this path")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := inputText(args)
	if err != nil {
		return err
	}

	mode, err := segmentationMode()
	if err != nil {
		return err
	}

	tok, err := tokenizer.New(tokenizerConfig())
	if err != nil {
		return err
	}

	morphemes, err := tok.Tokenize(text, mode)
	if err != nil {
		return err
	}

	if tokenizeDB != "" {
		if err := export.SQLite(tokenizeDB, text, mode, morphemes); err != nil {
			return fmt.Errorf("exporting to %s: %w", tokenizeDB, err)
		}
	}

	switch tokenizeOutput {
	case "json":
		out, err := json.MarshalIndent(morphemes, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "table":
		printMorphemeTable(os.Stdout, morphemes)
	default:
		return fmt.Errorf("unknown output format %q", tokenizeOutput)
	}

	return nil
}

// inputText takes the text from the arguments, or reads all of stdin when
// none are given.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// printMorphemeTable renders morphemes with runewidth-aware column
// alignment, since surfaces and readings are mostly double-width.
func printMorphemeTable(w io.Writer, morphemes []tokenizer.Morpheme) {
	headers := []string{"SURFACE", "POS", "BASE", "READING", "OOV", "SPAN"}
	rows := make([][]string, 0, len(morphemes))
	for _, m := range morphemes {
		oov := ""
		if m.IsOOV {
			oov = "*"
		}
		rows = append(rows, []string{
			m.Surface,
			strings.Join(m.PartOfSpeech, ","),
			m.DictionaryForm,
			m.ReadingForm,
			oov,
			fmt.Sprintf("[%d,%d)", m.Begin, m.End),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
}
