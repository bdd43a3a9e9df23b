package publicapi

import "strings"

// cargo public-api over-reports: it lists trait impls synthesized by the
// compiler and items leaked from dependencies alongside the authored
// surface. The filter below is a denylist of known noise patterns, kept as
// plain string fragments so new patterns are list additions, not new code.

// DependencyModules are path fragments of dependency and internal-library
// modules whose items leak into a crate's listing.
var DependencyModules = []string{
	"stabby_abi", "ppv_lite86", "crossbeam_epoch",
	"zenoh_keyexpr", "asn1_rs", "typenum", "either",
	"tracing::", "core::", "alloc::", "std::",
}

// SynthesizedMethods are signature fragments of compiler-derived trait
// methods (Clone, Eq, Hash, Debug, conversions, and stabby_abi internals).
var SynthesizedMethods = []string{
	"::borrow(", "::borrow_mut(", "::from(", "::into(",
	"::try_from(", "::try_into(", "::type_id(",
	"::clone(", "::clone_from(", "::default(",
	"::eq(", "::ne(", "::partial_cmp(", "::cmp(",
	"::hash(", "::fmt(",
	"::guard_mut_inner(", "::guard_ref_inner(",
	"::mut_as<", "::ref_as<", "::as_node(", "::as_node_mut(",
	"::vzip(", "::to_owned(", "::clone_into(",
	"::__clone_box(", "::deref(", "::deref_mut(",
}

// AliasPlaceholders are trait-associated type names that show up as type
// aliases but carry no authored meaning.
var AliasPlaceholders = []string{
	"::Error", "::Output", "::Guard<", "::GuardMut<",
	"::Init", "::Owned", "::Request",
}

// SentinelConsts are constants emitted by low-level memory-layout traits
// (ALIGN comes from Pointable).
var SentinelConsts = []string{
	"::ALIGN",
}

// RuleSet holds extra noise fragments merged over the built-in lists.
// Populated from the config file or a --rules YAML file.
type RuleSet struct {
	DependencyModules  []string `json:"dependencyModules,omitempty" yaml:"dependencyModules" mapstructure:"dependencyModules"`
	SynthesizedMethods []string `json:"synthesizedMethods,omitempty" yaml:"synthesizedMethods" mapstructure:"synthesizedMethods"`
	AliasPlaceholders  []string `json:"aliasPlaceholders,omitempty" yaml:"aliasPlaceholders" mapstructure:"aliasPlaceholders"`
	SentinelConsts     []string `json:"sentinelConsts,omitempty" yaml:"sentinelConsts" mapstructure:"sentinelConsts"`
}

// Merge returns a RuleSet combining the fragments of both sets.
func (rs RuleSet) Merge(other RuleSet) RuleSet {
	return RuleSet{
		DependencyModules:  append(append([]string{}, rs.DependencyModules...), other.DependencyModules...),
		SynthesizedMethods: append(append([]string{}, rs.SynthesizedMethods...), other.SynthesizedMethods...),
		AliasPlaceholders:  append(append([]string{}, rs.AliasPlaceholders...), other.AliasPlaceholders...),
		SentinelConsts:     append(append([]string{}, rs.SentinelConsts...), other.SentinelConsts...),
	}
}

// Rule is one noise predicate. Drop returns true when the record should be
// excluded from the comparable surface.
type Rule struct {
	Name string
	Drop func(*Record) bool
}

// Filter applies an ordered rule chain; the first rule that fires drops the
// record and short-circuits the rest.
type Filter struct {
	rules []Rule
}

// NewFilter builds the standard rule chain: dependency modules, synthesized
// methods, alias placeholders, sentinel constants. Fragments from extra are
// appended to the corresponding built-in lists.
func NewFilter(extra RuleSet) *Filter {
	deps := append(append([]string{}, DependencyModules...), extra.DependencyModules...)
	methods := append(append([]string{}, SynthesizedMethods...), extra.SynthesizedMethods...)
	aliases := append(append([]string{}, AliasPlaceholders...), extra.AliasPlaceholders...)
	consts := append(append([]string{}, SentinelConsts...), extra.SentinelConsts...)

	return &Filter{rules: []Rule{
		{
			Name: "dependency-module",
			Drop: func(r *Record) bool {
				return containsAny(r.Path, deps)
			},
		},
		{
			Name: "synthesized-method",
			Drop: func(r *Record) bool {
				return containsAny(r.Signature, methods)
			},
		},
		{
			Name: "alias-placeholder",
			Drop: func(r *Record) bool {
				return r.Kind == KindType && containsAny(r.Path, aliases)
			},
		},
		{
			Name: "sentinel-const",
			Drop: func(r *Record) bool {
				return r.Kind == KindConst && containsAny(r.Path, consts)
			},
		},
	}}
}

// Keep reports whether the record survives the rule chain.
func (f *Filter) Keep(r *Record) bool {
	_, dropped := f.DropReason(r)
	return !dropped
}

// DropReason returns the name of the first rule that drops the record.
func (f *Filter) DropReason(r *Record) (string, bool) {
	for _, rule := range f.rules {
		if rule.Drop(r) {
			return rule.Name, true
		}
	}
	return "", false
}

func containsAny(s string, fragments []string) bool {
	for _, frag := range fragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
