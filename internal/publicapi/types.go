// Package publicapi parses, filters, normalizes, and compares public API
// listings produced by cargo public-api. It is the core of the apiref tool:
// two crate listings go in, a three-way partition of their API surfaces
// comes out.
package publicapi

// Kind classifies a public API item by its declaration keyword.
type Kind string

const (
	// KindFn is a free function or method
	KindFn Kind = "fn"
	// KindStruct is a struct definition
	KindStruct Kind = "struct"
	// KindEnum is an enum definition
	KindEnum Kind = "enum"
	// KindType is a type alias
	KindType Kind = "type"
	// KindConst is a constant
	KindConst Kind = "const"
	// KindMod is a module
	KindMod Kind = "mod"
	// KindTrait is a trait definition
	KindTrait Kind = "trait"
)

// PathSeparator separates the segments of a fully qualified item path.
const PathSeparator = "::"

// Record represents one public API item parsed from a crate listing.
type Record struct {
	// Kind is the item's declaration kind
	Kind Kind `json:"kind"`

	// Path is the fully qualified path as it appeared in the listing,
	// e.g. oxidros_zenoh::Context::new
	Path string `json:"path"`

	// Signature is the original listing line, kept verbatim for display
	Signature string `json:"signature"`

	// Name is the last path segment
	Name string `json:"name"`

	// Parent is the path with the last segment removed, "" for top-level items
	Parent string `json:"parent"`
}

// Registry maps normalized item paths to their records for one crate.
type Registry map[string]Record
