// Package errors defines stable error codes and suggested fixes for apiref
// failure modes.
package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ListingUnavailable indicates cargo public-api produced no listing for a crate
	ListingUnavailable ErrorCode = "LISTING_UNAVAILABLE"
	// ManifestInvalid indicates the workspace Cargo.toml could not be read
	ManifestInvalid ErrorCode = "MANIFEST_INVALID"
	// CrateUnknown indicates a requested crate is not a workspace member
	CrateUnknown ErrorCode = "CRATE_UNKNOWN"
	// CacheUnavailable indicates the listing cache could not be opened
	CacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
	// ReportWriteFailed indicates the report could not be written
	ReportWriteFailed ErrorCode = "REPORT_WRITE_FAILED"
	// InternalError indicates an unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// InstallTool suggests installing a tool
	InstallTool FixActionType = "install-tool"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// InstallMethod represents methods for installing tools
type InstallMethod string

const (
	// Cargo installation via cargo install
	Cargo InstallMethod = "cargo"
	// Manual installation
	Manual InstallMethod = "manual"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType   `json:"type"`
	Command     string          `json:"command,omitempty"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url,omitempty"`
	Tool        string          `json:"tool,omitempty"`
	Methods     []InstallMethod `json:"methods,omitempty"`
}

// Error represents an apiref error with a stable code and suggestions
type Error struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error
}

// New creates an Error with the fixes registered for its code
func New(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:           code,
		Message:        message,
		SuggestedFixes: Actions[code],
		cause:          cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Actions maps error codes to suggested fix actions
var Actions = map[ErrorCode][]FixAction{
	ListingUnavailable: {
		{
			Type:        InstallTool,
			Tool:        "cargo-public-api",
			Command:     "cargo install cargo-public-api",
			Methods:     []InstallMethod{Cargo},
			Description: "Install cargo-public-api, required to extract crate API listings",
		},
		{
			Type:        RunCommand,
			Command:     "cargo public-api -p <crate>",
			Description: "Run the extraction manually to see the underlying build error",
		},
	},
	ManifestInvalid: {
		{
			Type:        RunCommand,
			Command:     "cargo metadata",
			Description: "Validate the workspace manifest",
		},
	},
	ReportWriteFailed: {
		{
			Type:        RunCommand,
			Command:     "apiref generate --output <writable-path>",
			Description: "Write the report to a different destination",
		},
	},
}
