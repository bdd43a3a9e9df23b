package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apierrors "apiref/internal/errors"
	"apiref/internal/logging"
	"apiref/internal/publicapi"
)

// Options configures the renderer.
type Options struct {
	// Title is the document heading
	Title string

	// CrateA and CrateB are the crates' underscore names as they appear in
	// listing paths; they are stripped from displayed signatures
	CrateA string
	CrateB string

	// LabelA and LabelB are the display names used in section headings
	LabelA string
	LabelB string
}

// Renderer produces the Markdown reference document. Rendering is pure and
// deterministic: identical inputs yield byte-identical documents.
type Renderer struct {
	opts   Options
	logger *logging.Logger
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts Options, logger *logging.Logger) *Renderer {
	return &Renderer{opts: opts, logger: logger}
}

// Render assembles the full document: summary table, then one section per
// partition with per-module subsections. Common records display from
// registry A; crate-specific sections display from their own registry.
func (r *Renderer) Render(regA, regB publicapi.Registry, p publicapi.Partition) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", r.opts.Title)
	sb.WriteString("This document is auto-generated by `apiref generate`.\n\n")

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Category | Count |\n")
	sb.WriteString("|----------|-------|\n")
	fmt.Fprintf(&sb, "| Common APIs | %d |\n", len(p.Common))
	fmt.Fprintf(&sb, "| %s-only APIs | %d |\n", r.opts.LabelA, len(p.OnlyA))
	fmt.Fprintf(&sb, "| %s-only APIs | %d |\n\n", r.opts.LabelB, len(p.OnlyB))

	sb.WriteString("---\n\n")

	sb.WriteString("## Common APIs (Both Backends)\n\n")
	fmt.Fprintf(&sb, "These APIs are available in both `%s` and `%s` with the same signature.\n\n",
		r.opts.CrateA, r.opts.CrateB)
	r.renderSection(&sb, p.Common, regA, r.opts.CrateA)

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "## %s-Only APIs\n\n", r.opts.LabelA)
	fmt.Fprintf(&sb, "These APIs are specific to `%s`.\n\n", r.opts.CrateA)
	r.renderSection(&sb, p.OnlyA, regA, r.opts.CrateA)

	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "## %s-Only APIs\n\n", r.opts.LabelB)
	fmt.Fprintf(&sb, "These APIs are specific to `%s`.\n\n", r.opts.CrateB)
	r.renderSection(&sb, p.OnlyB, regB, r.opts.CrateB)

	return sb.String()
}

// renderSection emits one `### module` block per module, modules in
// lexicographic order, signatures sorted by record name. The crate prefix
// is stripped from displayed signatures; the stripping is cosmetic only.
func (r *Renderer) renderSection(sb *strings.Builder, keys []string, reg publicapi.Registry, crateName string) {
	groups := GroupByModule(keys, reg)

	for _, module := range sortedModules(groups) {
		fmt.Fprintf(sb, "### %s\n\n", module)
		sb.WriteString("```rust\n")
		for _, record := range groups[module] {
			sig := strings.ReplaceAll(record.Signature, crateName+publicapi.PathSeparator, "")
			sb.WriteString(sig)
			sb.WriteString("\n")
		}
		sb.WriteString("```\n\n")
	}
}

// Write stores the fully rendered document at path, creating parent
// directories as needed. The document is written in a single call; a
// failure here is fatal to the run.
func (r *Renderer) Write(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apierrors.New(apierrors.ReportWriteFailed,
				fmt.Sprintf("failed to create report directory %s", dir), err)
		}
	}

	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return apierrors.New(apierrors.ReportWriteFailed,
			fmt.Sprintf("failed to write report to %s", path), err)
	}

	r.logger.Debug("Report written", map[string]interface{}{
		"path":  path,
		"bytes": len(doc),
	})

	return nil
}
