package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"apiref/internal/logging"
)

// newLogger creates a logger with the specified format.
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	level := logging.InfoLevel
	if os.Getenv("APIREF_LOG_LEVEL") == "debug" {
		level = logging.DebugLevel
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  level,
	})
}

// getWorkspaceRoot returns the cargo workspace root directory.
func getWorkspaceRoot() (string, error) {
	return os.Getwd()
}

// mustGetWorkspaceRoot returns the workspace root or exits on error.
func mustGetWorkspaceRoot() string {
	root, err := getWorkspaceRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return root
}

// newContext creates a new context for command execution.
func newContext() context.Context {
	return context.Background()
}

// resolveOutputPath anchors a relative output path at the workspace root.
func resolveOutputPath(root, output string) string {
	if filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(root, output)
}
