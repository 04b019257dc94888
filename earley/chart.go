package earley

import "fmt"

// Chart runs the predict/scan/complete fixed point for one (grammar, input)
// pair. All state is owned by the chart instance; a single chart is strictly
// sequential, but independent charts can run concurrently.
type Chart[N, T comparable] struct {
	grammar *Grammar[N, T]
	input   []T

	edges []*Edge[N, T]  // arena: every accepted edge, in discovery order
	seen  map[string]int // structural key -> arena index
	queue []int          // FIFO worklist of unprocessed arena indices
	head  int

	complete []*Edge[N, T]
}

// NewChart validates the grammar and seeds the worklist with one zero-width
// edge per start production.
func NewChart[N, T comparable](g *Grammar[N, T], input []T) (*Chart[N, T], error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("earley: %w", err)
	}
	c := &Chart[N, T]{
		grammar: g,
		input:   input,
		seen:    make(map[string]int),
	}
	for _, p := range g.Productions(g.start) {
		c.insert(&Edge[N, T]{rule: newDottedRule(p, 0)})
	}
	return c, nil
}

// Input returns the token sequence being parsed. It is fixed for the life of
// the chart.
func (c *Chart[N, T]) Input() []T { return c.input }

// MoreToProcess reports whether the worklist still holds unprocessed edges.
func (c *Chart[N, T]) MoreToProcess() bool { return c.head < len(c.queue) }

// ProcessAll runs ProcessOne until the worklist is empty. Termination is
// guaranteed: there are finitely many distinct edges for a bounded grammar
// and input, and the insertion gate never re-admits one.
func (c *Chart[N, T]) ProcessAll() {
	for c.MoreToProcess() {
		c.ProcessOne()
	}
}

// ProcessOne pops the oldest unprocessed edge, applies the step its next
// symbol calls for, and returns the edge. Calling ProcessOne on an exhausted
// chart is a programming error and panics.
func (c *Chart[N, T]) ProcessOne() *Edge[N, T] {
	if !c.MoreToProcess() {
		panic("earley: ProcessOne called with an empty worklist")
	}
	edge := c.edges[c.queue[c.head]]
	c.head++

	next, ok := edge.rule.NextSymbol()
	switch {
	case !ok:
		c.completeStep(edge)
	case next.IsTerminal():
		c.scanStep(edge, next.Terminal())
	default:
		c.predictStep(edge, next.Nonterminal())
	}
	return edge
}

// predictStep adds a fresh zero-width edge at the current frontier for every
// production of the expected nonterminal. Re-predicting the same nonterminal
// at the same position dies at the insertion gate, which is what lets
// recursive grammars terminate.
func (c *Chart[N, T]) predictStep(edge *Edge[N, T], nt N) {
	for _, p := range c.grammar.Productions(nt) {
		c.insert(&Edge[N, T]{
			rule:  newDottedRule(p, 0),
			start: edge.end,
			end:   edge.end,
		})
	}
}

// scanStep advances the edge over the next input token if it equals the
// expected terminal. A mismatch, or running off the end of the input, simply
// produces nothing: the search branch dies. The advanced edge carries the
// history unchanged; terminals are reconstructed from the rule itself.
func (c *Chart[N, T]) scanStep(edge *Edge[N, T], want T) {
	if edge.end >= len(c.input) || c.input[edge.end] != want {
		return
	}
	c.insert(&Edge[N, T]{
		rule:    edge.rule.advanced(),
		start:   edge.start,
		end:     edge.end + 1,
		history: edge.history,
	})
}

// completeStep records a full parse if the edge derives the start symbol over
// the whole input, then resumes every edge in the chart whose next expected
// symbol is this nonterminal at this position. The scan covers the entire
// edge set, not just edges older than the waiter, so derivations completed
// late still reach every rule waiting on them.
func (c *Chart[N, T]) completeStep(edge *Edge[N, T]) {
	lhs := edge.rule.prod.lhs
	if lhs == c.grammar.start && edge.start == 0 && edge.end == len(c.input) {
		c.complete = append(c.complete, edge)
	}

	// Collect first: the insertion gate appends to the arena being scanned.
	var resumed []*Edge[N, T]
	for _, waiting := range c.edges {
		next, ok := waiting.rule.NextSymbol()
		if !ok || next.IsTerminal() || next.Nonterminal() != lhs || waiting.end != edge.start {
			continue
		}
		history := make([]int, len(waiting.history), len(waiting.history)+1)
		copy(history, waiting.history)
		history = append(history, edge.index)
		resumed = append(resumed, &Edge[N, T]{
			rule:    waiting.rule.advanced(),
			start:   waiting.start,
			end:     edge.end,
			history: history,
		})
	}
	for _, e := range resumed {
		c.insert(e)
	}
}

// insert is the single insertion gate: an edge enters the arena, the dedup
// index and the worklist only if no structurally equal edge exists yet.
func (c *Chart[N, T]) insert(e *Edge[N, T]) {
	key := e.key()
	if _, dup := c.seen[key]; dup {
		return
	}
	e.index = len(c.edges)
	e.chart = c
	c.seen[key] = e.index
	c.edges = append(c.edges, e)
	c.queue = append(c.queue, e.index)
}

// CompleteDerivations returns every edge that derives the start symbol over
// the entire input, in discovery order. An empty result means the input is
// not in the language.
func (c *Chart[N, T]) CompleteDerivations() []*Edge[N, T] { return c.complete }

// Edges returns every edge accepted so far, in discovery order.
func (c *Chart[N, T]) Edges() []*Edge[N, T] { return c.edges }
