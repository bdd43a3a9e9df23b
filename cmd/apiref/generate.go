package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"apiref/internal/cargo"
	"apiref/internal/config"
	"apiref/internal/logging"
	"apiref/internal/publicapi"
	"apiref/internal/report"
	"apiref/internal/store"
)

var (
	generateOutput        string
	generateRclFeatures   string
	generateZenohFeatures string
	generateRules         string
	generateNoCache       bool
	generateLogFormat     string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the API reference comparing both backends",
	Long: `Extract the public API of both configured crates, diff the two
surfaces, and write the Markdown reference document.

A crate whose extraction fails contributes an empty surface: the report is
still produced, with every other item showing up as backend-specific.

Examples:
  apiref generate
  apiref generate -o docs/API_REFERENCE.md
  apiref generate --rcl-features=humble
  apiref generate --rules=extra-noise.yaml --no-cache`,
	Run: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output Markdown file path (default from config)")
	generateCmd.Flags().StringVar(&generateRclFeatures, "rcl-features", "jazzy", "Cargo features for the RCL backend crate")
	generateCmd.Flags().StringVar(&generateZenohFeatures, "zenoh-features", "", "Cargo features for the Zenoh backend crate")
	generateCmd.Flags().StringVar(&generateRules, "rules", "", "YAML file with extra noise rule fragments")
	generateCmd.Flags().BoolVar(&generateNoCache, "no-cache", false, "Bypass the listing cache")
	generateCmd.Flags().StringVar(&generateLogFormat, "format", "human", "Log format (human, json)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := newLogger(generateLogFormat)

	root := mustGetWorkspaceRoot()

	cfg, err := config.LoadConfig(root)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		cfg = config.DefaultConfig()
	}
	if cmd.Flags().Changed("zenoh-features") {
		cfg.Crates.A.Features = generateZenohFeatures
	}
	if cmd.Flags().Changed("rcl-features") {
		cfg.Crates.B.Features = generateRclFeatures
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	rules := cfg.Noise
	if generateRules != "" {
		fileRules, err := config.LoadRulesFile(generateRules)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rules = rules.Merge(fileRules)
	}

	verifyWorkspaceMembers(root, cfg, logger)

	ctx := newContext()
	src := newListingSource(root, cfg, logger)
	defer src.close()

	extractor := publicapi.NewExtractor(publicapi.NewFilter(rules), cfg.Crates.Placeholder, logger)

	resultA := extractor.Extract(src.listing(ctx, cfg.Crates.A), cargo.UnderscoreName(cfg.Crates.A.Name))
	logger.Info("Extracted API surface", map[string]interface{}{
		"crate":   cfg.Crates.A.Name,
		"items":   len(resultA.Registry),
		"dropped": resultA.Dropped,
	})

	resultB := extractor.Extract(src.listing(ctx, cfg.Crates.B), cargo.UnderscoreName(cfg.Crates.B.Name))
	logger.Info("Extracted API surface", map[string]interface{}{
		"crate":   cfg.Crates.B.Name,
		"items":   len(resultB.Registry),
		"dropped": resultB.Dropped,
	})

	partition := publicapi.Diff(resultA.Registry, resultB.Registry)

	renderer := report.NewRenderer(report.Options{
		Title:  cfg.Report.Title,
		CrateA: cargo.UnderscoreName(cfg.Crates.A.Name),
		CrateB: cargo.UnderscoreName(cfg.Crates.B.Name),
		LabelA: cfg.Crates.A.Label,
		LabelB: cfg.Crates.B.Label,
	}, logger)

	doc := renderer.Render(resultA.Registry, resultB.Registry, partition)

	output := generateOutput
	if output == "" {
		output = cfg.Report.Output
	}
	outputPath := resolveOutputPath(root, output)

	if err := renderer.Write(outputPath, doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated: %s\n", outputPath)

	logger.Debug("Report generation completed", map[string]interface{}{
		"common":     len(partition.Common),
		"onlyA":      len(partition.OnlyA),
		"onlyB":      len(partition.OnlyB),
		"durationMs": time.Since(start).Milliseconds(),
	})
}

// verifyWorkspaceMembers checks both configured crates against the
// workspace manifest. A missing or unknown crate only warns: its
// extraction will fail and degrade to an empty surface, which still yields
// a valid report.
func verifyWorkspaceMembers(root string, cfg *config.Config, logger *logging.Logger) {
	manifest, err := cargo.LoadManifest(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		logger.Warn("Failed to read workspace manifest, skipping member validation", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, crate := range []string{cfg.Crates.A.Name, cfg.Crates.B.Name} {
		if err := manifest.VerifyMember(crate); err != nil {
			logger.Warn("Crate is not a workspace member, its surface will be empty", map[string]interface{}{
				"crate": crate,
				"error": err.Error(),
			})
		}
	}
}

// listingSource fetches raw listings, consulting the cache when available.
type listingSource struct {
	runner      *cargo.Runner
	cache       *store.Store
	fingerprint string
	logger      *logging.Logger
}

func newListingSource(root string, cfg *config.Config, logger *logging.Logger) *listingSource {
	src := &listingSource{
		runner: cargo.NewRunner(root, logger),
		logger: logger,
	}

	if !cfg.Cache.Enabled || generateNoCache {
		return src
	}

	fingerprint, err := cargo.Fingerprint(filepath.Join(root, "Cargo.toml"))
	if err != nil {
		logger.Warn("No workspace manifest fingerprint, cache disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return src
	}

	cache, err := store.Open(root, logger)
	if err != nil {
		logger.Warn("Listing cache unavailable, extracting directly", map[string]interface{}{
			"error": err.Error(),
		})
		return src
	}

	src.cache = cache
	src.fingerprint = fingerprint
	return src
}

// listing returns the raw public-api listing for one crate. Extraction
// failures degrade to an empty listing with a warning; the pipeline then
// treats that crate's surface as empty rather than aborting.
func (s *listingSource) listing(ctx context.Context, crate config.CrateConfig) string {
	if s.cache != nil {
		if raw, ok := s.cache.Get(crate.Name, crate.Features, s.fingerprint); ok {
			s.logger.Debug("Using cached listing", map[string]interface{}{
				"crate": crate.Name,
			})
			return raw
		}
	}

	raw, err := s.runner.PublicAPI(ctx, crate.Name, crate.Features)
	if err != nil {
		s.logger.Warn("Listing extraction failed, treating surface as empty", map[string]interface{}{
			"crate": crate.Name,
			"error": err.Error(),
		})
		return ""
	}

	if s.cache != nil {
		if err := s.cache.Put(crate.Name, crate.Features, s.fingerprint, raw); err != nil {
			s.logger.Warn("Failed to cache listing", map[string]interface{}{
				"crate": crate.Name,
				"error": err.Error(),
			})
		}
	}

	return raw
}

func (s *listingSource) close() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
}
