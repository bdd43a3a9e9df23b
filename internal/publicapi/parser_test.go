package publicapi

import "testing"

func TestParseLineKinds(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		kind   Kind
		path   string
		symbol string
		parent string
	}{
		{
			name:   "function",
			line:   "pub fn oxidros_zenoh::Context::new() -> Result<Self, Error>",
			kind:   KindFn,
			path:   "oxidros_zenoh::Context::new",
			symbol: "new",
			parent: "oxidros_zenoh::Context",
		},
		{
			name:   "struct",
			line:   "pub struct oxidros_zenoh::Context",
			kind:   KindStruct,
			path:   "oxidros_zenoh::Context",
			symbol: "Context",
			parent: "oxidros_zenoh",
		},
		{
			name:   "enum",
			line:   "pub enum oxidros_zenoh::error::DynError",
			kind:   KindEnum,
			path:   "oxidros_zenoh::error::DynError",
			symbol: "DynError",
			parent: "oxidros_zenoh::error",
		},
		{
			name:   "type alias",
			line:   "pub type oxidros_zenoh::node::NodeName = String",
			kind:   KindType,
			path:   "oxidros_zenoh::node::NodeName",
			symbol: "NodeName",
			parent: "oxidros_zenoh::node",
		},
		{
			name:   "constant",
			line:   "pub const oxidros_zenoh::qos::DEPTH_DEFAULT: usize",
			kind:   KindConst,
			path:   "oxidros_zenoh::qos::DEPTH_DEFAULT:",
			symbol: "DEPTH_DEFAULT:",
			parent: "oxidros_zenoh::qos",
		},
		{
			name:   "module",
			line:   "pub mod oxidros_zenoh::topic",
			kind:   KindMod,
			path:   "oxidros_zenoh::topic",
			symbol: "topic",
			parent: "oxidros_zenoh",
		},
		{
			name:   "trait",
			line:   "pub trait oxidros_zenoh::msg::TypeSupport",
			kind:   KindTrait,
			path:   "oxidros_zenoh::msg::TypeSupport",
			symbol: "TypeSupport",
			parent: "oxidros_zenoh::msg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, ok := ParseLine(tt.line, "oxidros_zenoh")
			if !ok {
				t.Fatalf("expected line to parse: %q", tt.line)
			}
			if record.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, record.Kind)
			}
			if record.Path != tt.path {
				t.Errorf("expected path %q, got %q", tt.path, record.Path)
			}
			if record.Name != tt.symbol {
				t.Errorf("expected name %q, got %q", tt.symbol, record.Name)
			}
			if record.Parent != tt.parent {
				t.Errorf("expected parent %q, got %q", tt.parent, record.Parent)
			}
			if record.Signature != tt.line {
				t.Errorf("expected signature to keep the original line, got %q", record.Signature)
			}
		})
	}
}

func TestParseLineRejectsNonExports(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"// a comment",
		"fn private_helper()",
		"impl Clone for Context",
		"    where T: Send,",
		"pub(crate) fn oxidros_zenoh::internal()",
	}

	for _, line := range lines {
		if _, ok := ParseLine(line, "oxidros_zenoh"); ok {
			t.Errorf("expected line to be rejected: %q", line)
		}
	}
}

func TestParseLineRejectsForeignCrate(t *testing.T) {
	line := "pub struct zenoh::Session"
	if _, ok := ParseLine(line, "oxidros_zenoh"); ok {
		t.Errorf("expected foreign-crate export to be rejected: %q", line)
	}

	// A foreign path is rejected even when the line is otherwise valid
	line = "pub fn serde_json::to_string() -> String"
	if _, ok := ParseLine(line, "oxidros_zenoh"); ok {
		t.Errorf("expected foreign-crate function to be rejected: %q", line)
	}
}

func TestParseLineFunctionNeedsPathAndParen(t *testing.T) {
	// A bare single-segment fn path does not match the function grammar
	if record, ok := ParseLine("pub fn oxidros_zenoh", "oxidros_zenoh"); ok {
		t.Errorf("expected malformed fn line to be rejected, got %+v", record)
	}
}

func TestParseLineTrimsWhitespace(t *testing.T) {
	record, ok := ParseLine("  pub struct oxidros_zenoh::Node  ", "oxidros_zenoh")
	if !ok {
		t.Fatal("expected padded line to parse")
	}
	if record.Path != "oxidros_zenoh::Node" {
		t.Errorf("expected path oxidros_zenoh::Node, got %q", record.Path)
	}
}
