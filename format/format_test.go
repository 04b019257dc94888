package format

import (
	"strings"
	"testing"

	"github.com/swedgwood/earley-parser/earley"
)

func leaf(t string) *earley.Tree[string, string] {
	return &earley.Tree[string, string]{Symbol: earley.Term[string, string](t)}
}

func node(n string, children ...*earley.Tree[string, string]) *earley.Tree[string, string] {
	return &earley.Tree[string, string]{Symbol: earley.Nonterm[string, string](n), Children: children}
}

func TestWriteTreeLeaf(t *testing.T) {
	var b strings.Builder
	if err := WriteTree(&b, leaf("they")); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	if b.String() != "they" {
		t.Errorf("got %q, want %q", b.String(), "they")
	}
}

func TestWriteTreeChain(t *testing.T) {
	var b strings.Builder
	if err := WriteTree(&b, node("S", leaf("a"))); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	want := "S\n|\na"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestWriteTreeBranches(t *testing.T) {
	var b strings.Builder
	if err := WriteTree(&b, node("S", leaf("x"), leaf("y"))); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	want := strings.Join([]string{
		"S",
		"|_",
		"| |",
		"x y",
	}, "\n")
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteTreeUnevenSubtrees(t *testing.T) {
	var b strings.Builder
	if err := WriteTree(&b, node("S", node("A", leaf("a")), leaf("b"))); err != nil {
		t.Fatalf("write tree: %v", err)
	}
	want := strings.Join([]string{
		"S",
		"|_",
		"| |",
		"A |",
		"| |",
		"a b",
	}, "\n")
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestWriteTreesNumbersAndCount(t *testing.T) {
	var b strings.Builder
	trees := []*earley.Tree[string, string]{leaf("a"), leaf("b")}
	if err := WriteTrees(&b, trees); err != nil {
		t.Fatalf("write trees: %v", err)
	}
	want := "Derivation 1:\na\n\nDerivation 2:\nb\n\nNum parses: 2\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestWriteChartTable(t *testing.T) {
	g := earley.NewGrammar[string, string]("S")
	g.Rule("S", earley.Term[string, string]("a"))

	chart, err := earley.NewChart(g, []string{"a"})
	if err != nil {
		t.Fatalf("new chart: %v", err)
	}
	chart.ProcessAll()

	var b strings.Builder
	if err := WriteChartTable(&b, chart.Trace()); err != nil {
		t.Fatalf("write table: %v", err)
	}
	want := "  0 | S ->•a  |  0 |  0 | \n" +
		"  1 | S -> a• |  0 |  1 | \n"
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var b strings.Builder
	trees := []*earley.Tree[string, string]{node("S", leaf("a"))}
	if err := NewJSONEncoder[string, string](&b).Encode(trees); err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[
  {
    "symbol": "S",
    "children": [
      {
        "symbol": "a",
        "terminal": true
      }
    ]
  }
]`
	if b.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", b.String(), want)
	}
}
