package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hiraoka/sudago/internal/config"
	"github.com/hiraoka/sudago/tokenizer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the tool configuration file",
	Long: `Write the tool configuration file with defaults for the dictionary
path, settings file, user dictionary, and segmentation mode, so later
invocations can omit the flags.

Example:
  sudago init --dict ~/.config/sudago/dict/system_core.dic --mode C`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := tokenizerConfig()
	if cfg.DictionaryPath == "" {
		return fmt.Errorf("--dict is required; fetch one first with 'sudago dict fetch core'")
	}

	mode, err := segmentationMode()
	if err != nil {
		return err
	}

	// Verify the configuration actually loads before persisting it.
	if _, err := tokenizer.New(cfg); err != nil {
		return err
	}

	dir, err := config.EnsureConfigDir()
	if err != nil {
		return err
	}

	tool := &config.Config{
		DictionaryPath:     cfg.DictionaryPath,
		SettingsPath:       cfg.ConfigPath,
		ResourcePath:       cfg.ResourcePath,
		UserDictionaryPath: cfg.UserDictionaryPath,
		Mode:               mode.String(),
	}
	path := filepath.Join(dir, config.FileName)
	if err := tool.Save(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
