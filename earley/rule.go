package earley

import (
	"fmt"
	"strings"
)

// DottedRule is a production with a marked position: rhs[:dot] has been
// matched, rhs[dot:] has not.
type DottedRule[N, T comparable] struct {
	prod *Production[N, T]
	dot  int
}

func newDottedRule[N, T comparable](p *Production[N, T], dot int) DottedRule[N, T] {
	if dot > len(p.rhs) {
		panic(fmt.Sprintf("earley: dot position %d exceeds rhs length %d", dot, len(p.rhs)))
	}
	return DottedRule[N, T]{prod: p, dot: dot}
}

func (r DottedRule[N, T]) Production() *Production[N, T] { return r.prod }

func (r DottedRule[N, T]) Dot() int { return r.dot }

// IsComplete reports whether the dot has passed every symbol on the
// right-hand side.
func (r DottedRule[N, T]) IsComplete() bool { return r.dot >= len(r.prod.rhs) }

// NextSymbol returns the symbol immediately after the dot; ok is false when
// the rule is complete.
func (r DottedRule[N, T]) NextSymbol() (sym Symbol[N, T], ok bool) {
	if r.IsComplete() {
		return sym, false
	}
	return r.prod.rhs[r.dot], true
}

// advanced returns a copy with the dot moved one symbol to the right.
// Advancing a complete rule is a programming error.
func (r DottedRule[N, T]) advanced() DottedRule[N, T] {
	if r.IsComplete() {
		panic("earley: cannot advance dot past end of rule")
	}
	return DottedRule[N, T]{prod: r.prod, dot: r.dot + 1}
}

// String renders the rule with the dot marked, e.g. "S -> NP•VP".
func (r DottedRule[N, T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ->", r.prod.lhs)
	for i, sym := range r.prod.rhs {
		if i == r.dot {
			b.WriteString("•")
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	if r.dot == len(r.prod.rhs) {
		b.WriteString("•")
	}
	return b.String()
}
