package publicapi

import (
	"strings"

	"apiref/internal/logging"
)

// Normalize rewrites a crate-qualified path into the shared comparison
// namespace by substituting every occurrence of the crate's underscore name
// with the placeholder token. Normalizing an already-normalized path
// returns it unchanged.
func Normalize(path, crateName, placeholder string) string {
	return strings.ReplaceAll(path, crateName, placeholder)
}

// ExtractResult is the outcome of building one crate's registry.
type ExtractResult struct {
	// Registry holds the surviving records keyed by normalized path
	Registry Registry

	// Collisions lists normalized keys that more than one raw record mapped
	// to. The later record wins, matching historical behavior, but a
	// collision can mask a real surface difference so each one is reported.
	Collisions []string

	// Parsed counts lines that matched an export grammar for this crate
	Parsed int

	// Dropped counts parsed records removed by the noise filter
	Dropped int
}

// Extractor turns a crate's raw cargo public-api listing into a Registry.
type Extractor struct {
	filter      *Filter
	placeholder string
	logger      *logging.Logger
}

// NewExtractor creates an extractor using the given noise filter and
// placeholder token.
func NewExtractor(filter *Filter, placeholder string, logger *logging.Logger) *Extractor {
	return &Extractor{
		filter:      filter,
		placeholder: placeholder,
		logger:      logger,
	}
}

// Extract runs the parse, filter, and normalize stages over every line of
// the raw listing. An empty listing yields an empty registry, never an
// error, so a crate whose extraction failed still produces a valid
// (degenerate) comparison.
func (e *Extractor) Extract(raw, crateName string) ExtractResult {
	result := ExtractResult{Registry: make(Registry)}

	for _, line := range strings.Split(raw, "\n") {
		record, ok := ParseLine(line, crateName)
		if !ok {
			continue
		}
		result.Parsed++

		if !e.filter.Keep(record) {
			result.Dropped++
			continue
		}

		key := Normalize(record.Path, crateName, e.placeholder)
		if _, exists := result.Registry[key]; exists {
			result.Collisions = append(result.Collisions, key)
			e.logger.Warn("Normalized key collision, keeping later record", map[string]interface{}{
				"crate": crateName,
				"key":   key,
			})
		}
		result.Registry[key] = *record
	}

	return result
}
