// Package cmd contains all CLI commands for the sudago tool.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hiraoka/sudago/internal/config"
	"github.com/hiraoka/sudago/tokenizer"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sudago",
	Short: "Japanese morphological analysis with a dictionary-backed analyzer",
	Long: `sudago segments Japanese text into morphemes using a compiled
system dictionary, at one of three granularities:

  A (short)   shortest units, maximum segmentation
  B (middle)  word-like units
  C (long)    minimal segmentation, keeps named entities together

Dictionaries are distributed in three sizes (small, core, full); see
'sudago dict list' and 'sudago dict fetch'.`,
	SilenceUsage: true,
	Version:      tokenizer.Version(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/sudago)")
	rootCmd.PersistentFlags().String("dict", "", "path to the system dictionary (.dic)")
	rootCmd.PersistentFlags().String("settings", "", "path to an analyzer settings file (JSON)")
	rootCmd.PersistentFlags().String("resource", "", "path to the resource directory")
	rootCmd.PersistentFlags().String("user-dict", "", "path to a user dictionary")
	rootCmd.PersistentFlags().StringP("mode", "m", "", "segmentation mode: A, B, or C (default C)")

	viper.BindPFlag("dict", rootCmd.PersistentFlags().Lookup("dict"))
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("resource", rootCmd.PersistentFlags().Lookup("resource"))
	viper.BindPFlag("user_dict", rootCmd.PersistentFlags().Lookup("user-dict"))
	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgDir == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		cfgDir = dir
	}
	viper.Set("config_dir", cfgDir)

	viper.SetEnvPrefix("SUDAGO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadToolConfig loads the tool config file, returning an empty config when
// none exists yet.
func loadToolConfig() *config.Config {
	cfg, err := config.Load(filepath.Join(getConfigDir(), config.FileName))
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// tokenizerConfig merges flags, environment, and the tool config file into a
// tokenizer configuration. Flags and environment win.
func tokenizerConfig() tokenizer.Config {
	tool := loadToolConfig()

	cfg := tokenizer.Config{
		DictionaryPath:     viper.GetString("dict"),
		ConfigPath:         viper.GetString("settings"),
		ResourcePath:       viper.GetString("resource"),
		UserDictionaryPath: viper.GetString("user_dict"),
	}
	if cfg.DictionaryPath == "" {
		cfg.DictionaryPath = tool.DictionaryPath
	}
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = tool.SettingsPath
	}
	if cfg.ResourcePath == "" {
		cfg.ResourcePath = tool.ResourcePath
	}
	if cfg.UserDictionaryPath == "" {
		cfg.UserDictionaryPath = tool.UserDictionaryPath
	}
	return cfg
}

// segmentationMode resolves the requested mode, defaulting to C.
func segmentationMode() (tokenizer.Mode, error) {
	name := viper.GetString("mode")
	if name == "" {
		name = loadToolConfig().Mode
	}
	if name == "" {
		return tokenizer.ModeLong, nil
	}
	return tokenizer.ParseMode(name)
}
