// Package main is the entry point for the sudago CLI.
package main

import (
	"os"

	"github.com/hiraoka/sudago/cmd/sudago/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
