package publicapi

import (
	"regexp"
	"strings"
)

// grammar binds one item kind to the pattern that recognizes its listing
// line. The path is always capture group 1.
type grammar struct {
	kind    Kind
	pattern *regexp.Regexp
}

// grammars is matched in order; a line is classified by the first grammar
// that matches. Function lines require a :: in the path and an opening
// paren, the remaining kinds are keyword-then-path.
var grammars = []grammar{
	{KindFn, regexp.MustCompile(`^pub fn (\S+::\S+)\(`)},
	{KindStruct, regexp.MustCompile(`^pub struct (\S+)`)},
	{KindEnum, regexp.MustCompile(`^pub enum (\S+)`)},
	{KindType, regexp.MustCompile(`^pub type (\S+)`)},
	{KindConst, regexp.MustCompile(`^pub const (\S+)`)},
	{KindMod, regexp.MustCompile(`^pub mod (\S+)`)},
	{KindTrait, regexp.MustCompile(`^pub trait (\S+)`)},
}

// ParseLine classifies one listing line into a Record. It returns ok=false
// for lines that are not public-export declarations (blank lines, comments,
// continuation lines) and for exports whose path belongs to a crate other
// than the owning one (re-exports of dependencies).
//
// The part of the line past the path is never interpreted; Signature keeps
// the whole line verbatim for display.
func ParseLine(line, crateName string) (*Record, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "pub ") {
		return nil, false
	}

	for _, g := range grammars {
		m := g.pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		path := m[1]

		// Only items from the owning crate count as its surface
		if !strings.HasPrefix(path, crateName) {
			return nil, false
		}

		parts := strings.Split(path, PathSeparator)
		name := parts[len(parts)-1]
		parent := ""
		if len(parts) > 1 {
			parent = strings.Join(parts[:len(parts)-1], PathSeparator)
		}

		return &Record{
			Kind:      g.kind,
			Path:      path,
			Signature: line,
			Name:      name,
			Parent:    parent,
		}, true
	}

	return nil, false
}
