package grammar

import (
	"strings"
	"testing"

	"github.com/swedgwood/earley-parser/earley"
)

func countParses(t *testing.T, src, start string, input ...string) int {
	t.Helper()
	g, err := Parse("test.ebnf", strings.NewReader(src), start)
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	trees, err := earley.Parse(g, input)
	if err != nil {
		t.Fatalf("parse input %v: %v", input, err)
	}
	return len(trees)
}

func TestParseAlternation(t *testing.T) {
	src := `S = "a" | "b" .`
	if n := countParses(t, src, "S", "a"); n != 1 {
		t.Errorf("parses of a: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "b"); n != 1 {
		t.Errorf("parses of b: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "c"); n != 0 {
		t.Errorf("parses of c: got %d, want 0", n)
	}
}

func TestParseSequence(t *testing.T) {
	src := `S = "a" "b" .`
	if n := countParses(t, src, "S", "a", "b"); n != 1 {
		t.Errorf("parses of a b: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "a"); n != 0 {
		t.Errorf("parses of a: got %d, want 0", n)
	}
}

func TestParseRepetition(t *testing.T) {
	src := `S = { "a" } .`
	if n := countParses(t, src, "S"); n != 1 {
		t.Errorf("parses of empty input: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "a", "a", "a"); n != 1 {
		t.Errorf("parses of a a a: got %d, want 1", n)
	}
}

func TestParseOption(t *testing.T) {
	src := `S = "a" [ "b" ] .`
	if n := countParses(t, src, "S", "a"); n != 1 {
		t.Errorf("parses of a: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "a", "b"); n != 1 {
		t.Errorf("parses of a b: got %d, want 1", n)
	}
	if n := countParses(t, src, "S", "b"); n != 0 {
		t.Errorf("parses of b: got %d, want 0", n)
	}
}

func TestParseGroupedAlternation(t *testing.T) {
	src := `S = ( "a" | "b" ) "c" .`
	for _, first := range []string{"a", "b"} {
		if n := countParses(t, src, "S", first, "c"); n != 1 {
			t.Errorf("parses of %s c: got %d, want 1", first, n)
		}
	}
	if n := countParses(t, src, "S", "c"); n != 0 {
		t.Errorf("parses of c: got %d, want 0", n)
	}
}

func TestParseCrossProductionReference(t *testing.T) {
	src := `
S = NP VP .
NP = "they" .
VP = "fish" .
`
	if n := countParses(t, src, "S", "they", "fish"); n != 1 {
		t.Errorf("parses: got %d, want 1", n)
	}
}

func TestParseDefaultStart(t *testing.T) {
	src := `
S = A "x" .
A = "a" .
`
	if n := countParses(t, src, "", "a", "x"); n != 1 {
		t.Errorf("parses with default start: got %d, want 1", n)
	}
}

func TestParseRejectsCharacterRange(t *testing.T) {
	src := `S = "a" … "z" .`
	if _, err := Parse("test.ebnf", strings.NewReader(src), "S"); err == nil {
		t.Fatal("expected an error for a character range")
	}
}

func TestParseRejectsUndefinedReference(t *testing.T) {
	src := `S = Missing .`
	if _, err := Parse("test.ebnf", strings.NewReader(src), "S"); err == nil {
		t.Fatal("expected an error for an undefined production")
	}
}

func TestParseRejectsUnknownStart(t *testing.T) {
	src := `S = "a" .`
	if _, err := Parse("test.ebnf", strings.NewReader(src), "T"); err == nil {
		t.Fatal("expected an error for an unknown start production")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.ebnf", ""); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
