package cargo

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	apierrors "apiref/internal/errors"
	"apiref/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
}

func TestUnderscoreName(t *testing.T) {
	tests := []struct {
		crate string
		want  string
	}{
		{"oxidros-zenoh", "oxidros_zenoh"},
		{"oxidros-rcl", "oxidros_rcl"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := UnderscoreName(tt.crate); got != tt.want {
			t.Errorf("UnderscoreName(%q) = %q, expected %q", tt.crate, got, tt.want)
		}
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t, `
[workspace]
members = ["oxidros", "oxidros-zenoh", "backends/oxidros-rcl"]
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !m.HasMember("oxidros-zenoh") {
		t.Error("expected oxidros-zenoh to be a workspace member")
	}
	// Member entries are paths; the base name is what counts
	if !m.HasMember("oxidros-rcl") {
		t.Error("expected nested member oxidros-rcl to be found")
	}
	if m.HasMember("serde") {
		t.Error("expected serde to not be a workspace member")
	}
}

func TestVerifyMember(t *testing.T) {
	path := writeManifest(t, `
[workspace]
members = ["oxidros", "backends/oxidros-rcl"]
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := m.VerifyMember("oxidros-rcl"); err != nil {
		t.Errorf("expected nil for workspace member, got %v", err)
	}

	err = m.VerifyMember("serde")
	if err == nil {
		t.Fatal("expected error for non-member crate")
	}
	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierrors.CrateUnknown {
		t.Errorf("expected CRATE_UNKNOWN error, got %v", err)
	}
}

func TestLoadManifestInvalid(t *testing.T) {
	path := writeManifest(t, "not [valid toml")

	_, err := LoadManifest(path)
	if err == nil {
		t.Fatal("expected error for invalid manifest")
	}

	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierrors.ManifestInvalid {
		t.Errorf("expected MANIFEST_INVALID error, got %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	path := writeManifest(t, "[workspace]\nmembers = []\n")

	first, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected fingerprint to be stable for identical content")
	}

	if err := os.WriteFile(path, []byte("[workspace]\nmembers = [\"x\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	changed, err := Fingerprint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed == first {
		t.Error("expected fingerprint to change with content")
	}
}

func TestPublicAPIMissingTool(t *testing.T) {
	runner := NewRunner(t.TempDir(), testLogger())
	runner.bin = "definitely-not-cargo-xyz"

	_, err := runner.PublicAPI(context.Background(), "oxidros-zenoh", "")
	if err == nil {
		t.Fatal("expected error when the cargo binary is missing")
	}

	var apiErr *apierrors.Error
	if !errors.As(err, &apiErr) || apiErr.Code != apierrors.ListingUnavailable {
		t.Errorf("expected LISTING_UNAVAILABLE error, got %v", err)
	}
}
