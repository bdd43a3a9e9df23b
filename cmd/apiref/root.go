package main

import (
	"github.com/spf13/cobra"

	"apiref/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "apiref",
	Short: "apiref - public API surface comparator",
	Long: `apiref compares the public API surfaces of two crates that implement the
same abstraction behind different backends. It extracts each crate's surface
with cargo public-api, filters out compiler-synthesized and leaked
dependency items, and renders a Markdown reference listing common and
backend-specific APIs.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("apiref version {{.Version}}\n")
}
