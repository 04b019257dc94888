package earley

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteEdge is reported when asking for the derivation tree of an
	// edge whose rule has not been fully matched.
	ErrIncompleteEdge = errors.New("edge is not complete")

	// ErrDerivationCycle is reported when reconstruction revisits an edge
	// already on the current path, which would otherwise recurse forever.
	ErrDerivationCycle = errors.New("cycle in derivation history")
)

// Tree is a labeled ordered derivation tree: nonterminals label interior
// nodes, terminals label leaves, children appear in right-hand-side order.
type Tree[N, T comparable] struct {
	Symbol   Symbol[N, T]
	Children []*Tree[N, T]
}

// DerivationTree rebuilds the concrete parse recorded by a complete edge.
// History entries supply the nonterminal children; terminal leaves are
// synthesized from the rule's right-hand side, preserving symbol order.
func (e *Edge[N, T]) DerivationTree() (*Tree[N, T], error) {
	return e.derive(make(map[int]bool))
}

func (e *Edge[N, T]) derive(onPath map[int]bool) (*Tree[N, T], error) {
	if !e.rule.IsComplete() {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteEdge, e)
	}
	if onPath[e.index] {
		return nil, fmt.Errorf("%w: %v", ErrDerivationCycle, e)
	}
	onPath[e.index] = true
	defer delete(onPath, e.index)

	node := &Tree[N, T]{Symbol: Nonterm[N, T](e.rule.prod.lhs)}
	h := 0
	for _, sym := range e.rule.prod.rhs {
		if sym.IsTerminal() {
			node.Children = append(node.Children, &Tree[N, T]{Symbol: sym})
			continue
		}
		if h >= len(e.history) {
			return nil, fmt.Errorf("%w: no history for %v in %v", ErrIncompleteEdge, sym, e)
		}
		child, err := e.chart.edges[e.history[h]].derive(onPath)
		if err != nil {
			return nil, err
		}
		h++
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// DerivationTrees reconstructs one tree per complete derivation, in
// discovery order.
func (c *Chart[N, T]) DerivationTrees() ([]*Tree[N, T], error) {
	trees := make([]*Tree[N, T], 0, len(c.complete))
	for _, e := range c.complete {
		t, err := e.DerivationTree()
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	return trees, nil
}

// Parse is a convenience wrapper: build a chart, run it to its fixed point
// and return every derivation tree.
func Parse[N, T comparable](g *Grammar[N, T], input []T) ([]*Tree[N, T], error) {
	c, err := NewChart(g, input)
	if err != nil {
		return nil, err
	}
	c.ProcessAll()
	return c.DerivationTrees()
}
