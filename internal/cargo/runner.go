// Package cargo is the boundary to the Rust toolchain: it shells out to
// cargo public-api for raw listings and reads workspace metadata from
// Cargo.toml.
package cargo

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	apierrors "apiref/internal/errors"
	"apiref/internal/logging"
)

// Runner invokes cargo public-api inside a workspace.
type Runner struct {
	workspaceRoot string
	bin           string
	logger        *logging.Logger
}

// NewRunner creates a runner rooted at the given cargo workspace.
func NewRunner(workspaceRoot string, logger *logging.Logger) *Runner {
	return &Runner{
		workspaceRoot: workspaceRoot,
		bin:           "cargo",
		logger:        logger,
	}
}

// PublicAPI runs `cargo public-api -p <crate> [--features <features>]` and
// returns the raw listing text. A failed invocation returns an error with
// code LISTING_UNAVAILABLE; callers degrade to an empty listing so the
// comparison still produces a report.
func (r *Runner) PublicAPI(ctx context.Context, crate, features string) (string, error) {
	args := []string{"public-api", "-p", crate}
	if features != "" {
		args = append(args, "--features", features)
	}

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.workspaceRoot

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("Extracting public API", map[string]interface{}{
		"crate":    crate,
		"features": features,
	})

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			err = fmt.Errorf("%w: %s", err, detail)
		}
		return "", apierrors.New(apierrors.ListingUnavailable,
			fmt.Sprintf("cargo public-api failed for %s", crate), err)
	}

	return stdout.String(), nil
}
