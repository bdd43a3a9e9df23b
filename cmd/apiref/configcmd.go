package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"apiref/internal/config"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the apiref configuration",
	Long: `Print the effective configuration as JSON.

With --init, write the default configuration to .apiref/config.json so it
can be edited (crate names, report title, extra noise fragments).`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the default configuration to .apiref/config.json")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) {
	root := mustGetWorkspaceRoot()

	if configInit {
		cfg := config.DefaultConfig()
		if err := cfg.Save(root); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Wrote .apiref/config.json")
		return
	}

	cfg, err := config.LoadConfig(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting config: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}
