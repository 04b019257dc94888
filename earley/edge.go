package earley

import (
	"fmt"
	"strconv"
	"strings"
)

// Edge records that a dotted rule has matched input[start:end). The matched
// nonterminal symbols of the rule correspond, in order, to the edges in its
// history. Edges are immutable once accepted into a chart.
//
// Edges live in the chart's arena and reference their history by arena index
// rather than by owned copies. Because the arena is fully deduplicated, index
// equality coincides with structural equality.
type Edge[N, T comparable] struct {
	rule    DottedRule[N, T]
	start   int
	end     int
	history []int
	index   int
	chart   *Chart[N, T]
}

func (e *Edge[N, T]) Rule() DottedRule[N, T] { return e.rule }

func (e *Edge[N, T]) Start() int { return e.start }

func (e *Edge[N, T]) End() int { return e.end }

// Index returns the edge's position in discovery order.
func (e *Edge[N, T]) Index() int { return e.index }

// History returns the direct child edges justifying the matched nonterminal
// symbols, in right-hand-side order. Terminals never contribute entries.
func (e *Edge[N, T]) History() []*Edge[N, T] {
	out := make([]*Edge[N, T], len(e.history))
	for i, idx := range e.history {
		out[i] = e.chart.edges[idx]
	}
	return out
}

// key is the structural identity of an edge: rule, span and history. Two
// edges with the same rule and span but different histories are distinct;
// each carries one concrete derivation path.
func (e *Edge[N, T]) key() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(e.rule.prod.index))
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(e.rule.dot))
	b.WriteByte('@')
	b.WriteString(strconv.Itoa(e.start))
	b.WriteByte('-')
	b.WriteString(strconv.Itoa(e.end))
	for _, h := range e.history {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(h))
	}
	return b.String()
}

func (e *Edge[N, T]) String() string {
	return fmt.Sprintf("%v [%d,%d)", e.rule, e.start, e.end)
}
