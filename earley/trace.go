package earley

// TraceEntry is one row of the discovery-order log: an edge together with its
// history expressed as indices into the same log. Because edges live in an
// append-only arena, the index resolution is the identity function.
type TraceEntry[N, T comparable] struct {
	Index   int
	Edge    *Edge[N, T]
	History []int
}

// Trace returns the append-only discovery log: every edge accepted by the
// insertion gate, in the order it was accepted. The trace is a read-only view
// of the chart; taking it or ignoring it cannot affect parse results.
func (c *Chart[N, T]) Trace() []TraceEntry[N, T] {
	entries := make([]TraceEntry[N, T], len(c.edges))
	for i, e := range c.edges {
		entries[i] = TraceEntry[N, T]{Index: i, Edge: e, History: e.history}
	}
	return entries
}
