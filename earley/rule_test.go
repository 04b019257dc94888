package earley

import "testing"

func TestDottedRuleProgress(t *testing.T) {
	g := NewGrammar[string, string]("S")
	p := g.Rule("S", nonterm("NP"), term("x"))

	r := newDottedRule(p, 0)
	if r.IsComplete() {
		t.Error("fresh rule should not be complete")
	}
	sym, ok := r.NextSymbol()
	if !ok || sym.IsTerminal() || sym.Nonterminal() != "NP" {
		t.Errorf("expected next symbol NP, got %v (ok=%v)", sym, ok)
	}

	r = r.advanced()
	sym, ok = r.NextSymbol()
	if !ok || !sym.IsTerminal() || sym.Terminal() != "x" {
		t.Errorf("expected next symbol x, got %v (ok=%v)", sym, ok)
	}

	r = r.advanced()
	if !r.IsComplete() {
		t.Error("rule should be complete with the dot at the end")
	}
	if _, ok := r.NextSymbol(); ok {
		t.Error("complete rule should have no next symbol")
	}
}

func TestAdvancePastEndPanics(t *testing.T) {
	g := NewGrammar[string, string]("S")
	p := g.Rule("S", term("x"))
	r := newDottedRule(p, 1)

	defer func() {
		if recover() == nil {
			t.Error("expected advancing a complete rule to panic")
		}
	}()
	r.advanced()
}

func TestDotBeyondRHSPanics(t *testing.T) {
	g := NewGrammar[string, string]("S")
	p := g.Rule("S", term("x"))

	defer func() {
		if recover() == nil {
			t.Error("expected out-of-range dot position to panic")
		}
	}()
	newDottedRule(p, 2)
}

func TestDottedRuleString(t *testing.T) {
	g := NewGrammar[string, string]("S")
	p := g.Rule("S", nonterm("NP"), nonterm("VP"))

	cases := []struct {
		dot  int
		want string
	}{
		{0, "S ->•NP VP"},
		{1, "S -> NP•VP"},
		{2, "S -> NP VP•"},
	}
	for _, c := range cases {
		if got := newDottedRule(p, c.dot).String(); got != c.want {
			t.Errorf("dot %d: expected %q, got %q", c.dot, c.want, got)
		}
	}
}
