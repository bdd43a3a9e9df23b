package publicapi

import (
	"io"
	"testing"

	"apiref/internal/logging"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})
}

func TestNormalize(t *testing.T) {
	got := Normalize("oxidros_zenoh::Context::new", "oxidros_zenoh", "oxidros")
	if got != "oxidros::Context::new" {
		t.Errorf("expected oxidros::Context::new, got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize("oxidros_rcl::node::Node", "oxidros_rcl", "oxidros")
	twice := Normalize(once, "oxidros_rcl", "oxidros")
	if once != twice {
		t.Errorf("normalization is not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractEndToEnd(t *testing.T) {
	// The synthesized clone is dropped, so both crates end up with exactly
	// one record under the same normalized key.
	rawA := "pub fn oxidros_zenoh::Context::new() -> Self\n" +
		"pub fn oxidros_zenoh::Context::clone(&self) -> Self\n"
	rawB := "pub fn oxidros_rcl::Context::new() -> Self\n"

	extractor := NewExtractor(NewFilter(RuleSet{}), "oxidros", testLogger())

	resultA := extractor.Extract(rawA, "oxidros_zenoh")
	resultB := extractor.Extract(rawB, "oxidros_rcl")

	if len(resultA.Registry) != 1 {
		t.Fatalf("expected 1 record in registry A, got %d", len(resultA.Registry))
	}
	if resultA.Dropped != 1 {
		t.Errorf("expected 1 dropped record in A, got %d", resultA.Dropped)
	}
	if len(resultB.Registry) != 1 {
		t.Fatalf("expected 1 record in registry B, got %d", len(resultB.Registry))
	}

	partition := Diff(resultA.Registry, resultB.Registry)
	if len(partition.Common) != 1 || len(partition.OnlyA) != 0 || len(partition.OnlyB) != 0 {
		t.Errorf("expected Common=1 OnlyA=0 OnlyB=0, got %d/%d/%d",
			len(partition.Common), len(partition.OnlyA), len(partition.OnlyB))
	}
	if partition.Common[0] != "oxidros::Context::new" {
		t.Errorf("expected common key oxidros::Context::new, got %q", partition.Common[0])
	}
}

func TestExtractDropsSentinelConstEntirely(t *testing.T) {
	raw := "pub const oxidros_zenoh::Pointable::ALIGN: usize = 8\n"

	extractor := NewExtractor(NewFilter(RuleSet{}), "oxidros", testLogger())
	result := extractor.Extract(raw, "oxidros_zenoh")

	if len(result.Registry) != 0 {
		t.Errorf("expected ALIGN const to reach no registry, got %d records", len(result.Registry))
	}
	if result.Parsed != 1 || result.Dropped != 1 {
		t.Errorf("expected parsed=1 dropped=1, got parsed=%d dropped=%d", result.Parsed, result.Dropped)
	}
}

func TestExtractEmptyListing(t *testing.T) {
	extractor := NewExtractor(NewFilter(RuleSet{}), "oxidros", testLogger())
	result := extractor.Extract("", "oxidros_zenoh")

	if len(result.Registry) != 0 {
		t.Errorf("expected empty registry for empty listing, got %d records", len(result.Registry))
	}
}

func TestExtractCollisionKeepsLaterRecord(t *testing.T) {
	// A struct and a module sharing a path normalize to the same key
	raw := "pub struct oxidros_zenoh::qos\n" +
		"pub mod oxidros_zenoh::qos\n"

	extractor := NewExtractor(NewFilter(RuleSet{}), "oxidros", testLogger())
	result := extractor.Extract(raw, "oxidros_zenoh")

	if len(result.Collisions) != 1 {
		t.Fatalf("expected 1 collision, got %d", len(result.Collisions))
	}
	key := result.Collisions[0]
	if record, ok := result.Registry[key]; !ok || record.Kind != KindMod {
		t.Errorf("expected the later (mod) record to win the collision, got %+v", record)
	}
}
