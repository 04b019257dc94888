package earley

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoStartProductions is reported when the start symbol has no
	// productions; no parse can ever begin.
	ErrNoStartProductions = errors.New("start symbol has no productions")

	// ErrUndefinedNonterminal is reported when a nonterminal appears on a
	// right-hand side but has no defining productions.
	ErrUndefinedNonterminal = errors.New("nonterminal has no productions")
)

// Production is a rewrite rule lhs -> rhs. It is immutable once added to a
// grammar. An empty rhs derives the empty string.
type Production[N, T comparable] struct {
	lhs   N
	rhs   []Symbol[N, T]
	index int // position within the grammar, the basis of edge identity
}

func (p *Production[N, T]) LHS() N { return p.lhs }

func (p *Production[N, T]) RHS() []Symbol[N, T] { return p.rhs }

func (p *Production[N, T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v ->", p.lhs)
	for _, sym := range p.rhs {
		b.WriteByte(' ')
		b.WriteString(sym.String())
	}
	return b.String()
}

// Grammar is a finite set of productions with a designated start nonterminal,
// indexed by left-hand side for O(1) lookup during prediction. Order among
// alternatives is insertion order and carries no semantic weight.
type Grammar[N, T comparable] struct {
	start N
	prods []*Production[N, T]
	byLHS map[N][]*Production[N, T]
}

func NewGrammar[N, T comparable](start N) *Grammar[N, T] {
	return &Grammar[N, T]{
		start: start,
		byLHS: make(map[N][]*Production[N, T]),
	}
}

// Rule adds the production lhs -> rhs and returns it.
func (g *Grammar[N, T]) Rule(lhs N, rhs ...Symbol[N, T]) *Production[N, T] {
	p := &Production[N, T]{lhs: lhs, rhs: rhs, index: len(g.prods)}
	g.prods = append(g.prods, p)
	g.byLHS[lhs] = append(g.byLHS[lhs], p)
	return p
}

func (g *Grammar[N, T]) Start() N { return g.start }

// Productions returns the productions with the given left-hand side, in
// insertion order.
func (g *Grammar[N, T]) Productions(lhs N) []*Production[N, T] {
	return g.byLHS[lhs]
}

// Validate checks that a parse could in principle begin and finish: the start
// symbol must have at least one production and every nonterminal referenced
// on a right-hand side must be defined.
func (g *Grammar[N, T]) Validate() error {
	if len(g.byLHS[g.start]) == 0 {
		return fmt.Errorf("%w: %v", ErrNoStartProductions, g.start)
	}
	for _, p := range g.prods {
		for _, sym := range p.rhs {
			if sym.IsTerminal() {
				continue
			}
			if len(g.byLHS[sym.Nonterminal()]) == 0 {
				return fmt.Errorf("%w: %v (referenced by %v)", ErrUndefinedNonterminal, sym.Nonterminal(), p)
			}
		}
	}
	return nil
}
