package publicapi

import "sort"

// Partition is the three-way split of two registries' key sets. The three
// slices are pairwise disjoint, sorted, and together cover the union of
// both key sets.
type Partition struct {
	// Common holds keys present in both registries
	Common []string

	// OnlyA holds keys present only in the first registry
	OnlyA []string

	// OnlyB holds keys present only in the second registry
	OnlyB []string
}

// Diff computes the presence partition of two registries. A key appearing
// in Common says nothing about the two records' signatures being identical;
// the comparison is per-key existence only.
func Diff(a, b Registry) Partition {
	var p Partition

	for key := range a {
		if _, ok := b[key]; ok {
			p.Common = append(p.Common, key)
		} else {
			p.OnlyA = append(p.OnlyA, key)
		}
	}

	for key := range b {
		if _, ok := a[key]; !ok {
			p.OnlyB = append(p.OnlyB, key)
		}
	}

	// Sort for deterministic output
	sort.Strings(p.Common)
	sort.Strings(p.OnlyA)
	sort.Strings(p.OnlyB)

	return p
}
