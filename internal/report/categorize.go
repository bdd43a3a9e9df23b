// Package report groups partitioned API records by module and renders the
// final Markdown reference document.
package report

import (
	"sort"
	"strings"

	"apiref/internal/publicapi"
)

// ModuleFallback is the bucket for paths too short to carry a module
// segment (a bare `pub mod oxidros` style top-level item).
const ModuleFallback = "root"

// ModuleOf returns the module bucket for a normalized key: the first path
// segment after the placeholder, or ModuleFallback when the path has fewer
// than two segments.
func ModuleOf(key string) string {
	parts := strings.Split(key, publicapi.PathSeparator)
	if len(parts) < 2 {
		return ModuleFallback
	}
	return parts[1]
}

// GroupByModule groups the records behind the given normalized keys by
// module. Every key contributes exactly one record; nothing is dropped.
// Records within a module are sorted by name, ties broken by path so the
// grouping is deterministic.
func GroupByModule(keys []string, reg publicapi.Registry) map[string][]publicapi.Record {
	groups := make(map[string][]publicapi.Record)

	for _, key := range keys {
		record := reg[key]
		module := ModuleOf(key)
		groups[module] = append(groups[module], record)
	}

	for module := range groups {
		records := groups[module]
		sort.Slice(records, func(i, j int) bool {
			if records[i].Name != records[j].Name {
				return records[i].Name < records[j].Name
			}
			return records[i].Path < records[j].Path
		})
	}

	return groups
}

// sortedModules returns the group keys in lexicographic order.
func sortedModules(groups map[string][]publicapi.Record) []string {
	modules := make([]string, 0, len(groups))
	for module := range groups {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	return modules
}
