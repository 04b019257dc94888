package grammar

import (
	"strings"
	"testing"
)

func TestToDiagnosticWithPosition(t *testing.T) {
	d := toDiagnostic("test.ebnf:3:7: missing production")
	if d.Message != "missing production" {
		t.Errorf("message: got %q", d.Message)
	}
	if d.Range.Start.Line != 2 || d.Range.Start.Character != 6 {
		t.Errorf("position: got %d:%d, want 2:6", d.Range.Start.Line, d.Range.Start.Character)
	}
}

func TestToDiagnosticWithoutPosition(t *testing.T) {
	d := toDiagnostic("something went wrong")
	if d.Message != "something went wrong" {
		t.Errorf("message: got %q", d.Message)
	}
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 0 {
		t.Errorf("position: got %d:%d, want 0:0", d.Range.Start.Line, d.Range.Start.Character)
	}
}

func TestDiagnoseFlattensParseErrors(t *testing.T) {
	src := `
S = A .
A = B .
`
	_, err := Parse("test.ebnf", strings.NewReader(src), "S")
	if err == nil {
		t.Fatal("expected an error for an undefined production")
	}
	diags := diagnose(err)
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	for _, d := range diags {
		if d.Message == "" {
			t.Error("diagnostic with empty message")
		}
	}
}
