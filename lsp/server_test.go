package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnosticsOnFailure(t *testing.T) {
	ls := NewServer("test")

	diags := ls.Diagnostics([]byte("[1,]"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]

	// Parser reports 1:4; LSP positions are 0-based.
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 3 {
		t.Errorf("start: got %d:%d, want 0:3", d.Range.Start.Line, d.Range.Start.Character)
	}
	if d.Range.End.Character != d.Range.Start.Character+1 {
		t.Errorf("end: got %d, want %d", d.Range.End.Character, d.Range.Start.Character+1)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Error("severity: want error")
	}
	if d.Source == nil || *d.Source != lsName {
		t.Errorf("source: got %v", d.Source)
	}
	if d.Code == nil || d.Code.Value != "TrailingComma" {
		t.Errorf("code: got %v", d.Code)
	}
	if !strings.Contains(d.Message, "Trailing comma") {
		t.Errorf("message: got %q", d.Message)
	}
}

func TestDiagnosticsOnSuccess(t *testing.T) {
	ls := NewServer("test")
	diags := ls.Diagnostics([]byte(`{"a": [1, 2, 3]}`))
	if diags == nil {
		t.Fatal("got nil, want empty slice")
	}
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0", len(diags))
	}
}

func TestDiagnosticsWithTrailingCommas(t *testing.T) {
	ls := NewServer("test", WithTrailingCommas())
	if diags := ls.Diagnostics([]byte("[1,]")); len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0", len(diags))
	}
	if diags := ls.Diagnostics([]byte("[1,,]")); len(diags) != 1 {
		t.Errorf("got %d diagnostics, want 1", len(diags))
	}
}

func TestDiagnosticsMultiline(t *testing.T) {
	ls := NewServer("test")
	diags := ls.Diagnostics([]byte("[\n0,\n1,\n2,\n3,4,5,6 7,\n8,\n9\n]"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Range.Start.Line != 4 || d.Range.Start.Character != 8 {
		t.Errorf("start: got %d:%d, want 4:8", d.Range.Start.Line, d.Range.Start.Character)
	}
}
