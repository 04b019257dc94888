package earley

import "fmt"

type symbolKind uint8

const (
	kindNonterminal symbolKind = iota
	kindTerminal
)

// Symbol is a grammar symbol: either a terminal (an input token) or a
// nonterminal (expandable by productions). The N and T type parameters are
// caller-supplied value types; anything comparable works, small enums and
// interned strings being the usual choices.
type Symbol[N, T comparable] struct {
	nt   N
	t    T
	kind symbolKind
}

// Term wraps a terminal value as a Symbol.
func Term[N, T comparable](t T) Symbol[N, T] {
	return Symbol[N, T]{t: t, kind: kindTerminal}
}

// Nonterm wraps a nonterminal value as a Symbol.
func Nonterm[N, T comparable](n N) Symbol[N, T] {
	return Symbol[N, T]{nt: n, kind: kindNonterminal}
}

func (s Symbol[N, T]) IsTerminal() bool { return s.kind == kindTerminal }

// Terminal returns the terminal value. Only meaningful when IsTerminal
// reports true.
func (s Symbol[N, T]) Terminal() T { return s.t }

// Nonterminal returns the nonterminal value. Only meaningful when IsTerminal
// reports false.
func (s Symbol[N, T]) Nonterminal() N { return s.nt }

func (s Symbol[N, T]) String() string {
	if s.kind == kindTerminal {
		return fmt.Sprintf("%v", s.t)
	}
	return fmt.Sprintf("%v", s.nt)
}
