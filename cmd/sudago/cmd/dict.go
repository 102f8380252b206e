package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/hiraoka/sudago/dict"
	"github.com/hiraoka/sudago/internal/config"
)

var (
	dictVersion string
	dictJSON    bool
	fetchDest   string
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Inspect and fetch the distributable system dictionaries",
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available dictionary variants",
	RunE:  runDictList,
}

var dictURLCmd = &cobra.Command{
	Use:   "url <small|core|full>",
	Short: "Print the download URL for a dictionary variant",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictURL,
}

var dictFetchCmd = &cobra.Command{
	Use:   "fetch <small|core|full>",
	Short: "Download a dictionary and unpack it",
	Long: `Download a dictionary archive and unpack the .dic file into the
destination directory (default: the tool's config directory).

Example:
  sudago dict fetch core
  sudago dict fetch full --dict-version 20241021 --dest /opt/sudachi`,
	Args: cobra.ExactArgs(1),
	RunE: runDictFetch,
}

func init() {
	rootCmd.AddCommand(dictCmd)
	dictCmd.AddCommand(dictListCmd, dictURLCmd, dictFetchCmd)

	dictCmd.PersistentFlags().StringVar(&dictVersion, "dict-version", "", "dictionary release version (default: latest)")
	dictListCmd.Flags().BoolVar(&dictJSON, "json", false, "print as JSON")
	dictFetchCmd.Flags().StringVar(&fetchDest, "dest", "", "destination directory")
}

func runDictList(cmd *cobra.Command, args []string) error {
	infos := dict.AllInfo(dictVersion)

	if dictJSON {
		out, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	nameWidth := runewidth.StringWidth("NAME")
	for _, info := range infos {
		if w := runewidth.StringWidth(info.Name); w > nameWidth {
			nameWidth = w
		}
	}
	fmt.Printf("%s  %7s  %s\n", runewidth.FillRight("NAME", nameWidth), "SIZE", "DESCRIPTION")
	for _, info := range infos {
		fmt.Printf("%s  %5dMB  %s\n", runewidth.FillRight(info.Name, nameWidth), info.SizeMB, info.Description)
		fmt.Printf("%s  %7s  %s\n", strings.Repeat(" ", nameWidth), "", info.DownloadURL)
	}
	return nil
}

func runDictURL(cmd *cobra.Command, args []string) error {
	size, err := dict.ParseSize(args[0])
	if err != nil {
		return err
	}
	fmt.Println(dict.DownloadURL(size, dictVersion))
	return nil
}

func runDictFetch(cmd *cobra.Command, args []string) error {
	size, err := dict.ParseSize(args[0])
	if err != nil {
		return err
	}

	dest := fetchDest
	if dest == "" {
		dest, err = config.DefaultDictionaryDir()
		if err != nil {
			return err
		}
	}

	info := dict.GetInfo(size, dictVersion)
	fmt.Printf("Fetching %s (~%dMB)...\n", info.DownloadURL, info.SizeMB)

	path, err := dict.NewFetcher().Fetch(cmd.Context(), size, dictVersion, dest)
	if err != nil {
		return err
	}

	fmt.Printf("Installed %s\n", path)
	fmt.Printf("Use it with: sudago tokenize --dict %s <text>\n", path)
	return nil
}
