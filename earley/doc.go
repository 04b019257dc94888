// Package earley implements a worklist-driven Earley chart parser for
// context-free grammars.
//
// # Overview
//
// The parser recognizes a token sequence against a grammar supplied as a set
// of typed productions, and produces every valid derivation, not just one.
// Grammars may be ambiguous, left-recursive or right-recursive; no normal
// form is required.
//
// # Algorithm
//
// A Chart holds a deduplicated arena of edges (a dotted rule plus the input
// span it matches and the child edges justifying it) and a FIFO worklist.
// Each step pops one edge and dispatches on the symbol after the dot:
//
//   - Nonterminal: predict zero-width edges for its productions at the
//     current frontier.
//   - Terminal: scan the next input token; on a match, advance the dot.
//   - None (rule complete): record a full parse if the edge derives the
//     start symbol over the whole input, then resume every edge waiting on
//     this nonterminal at this position.
//
// Every synthesized edge passes through a single insertion gate that drops
// structural duplicates. The gate is the sole termination mechanism for
// cyclic grammars, and it bounds the chart: there are finitely many distinct
// edges for a bounded grammar and input.
//
// Edge equality includes history, so two edges with the same rule and span
// but different derivation paths coexist; this is what lets each alternative
// derivation of an ambiguous sentence be reconstructed separately.
//
// # Usage
//
//	g := earley.NewGrammar[string, string]("S")
//	g.Rule("S", earley.Nonterm[string, string]("S"), earley.Term[string, string]("x"))
//	g.Rule("S", earley.Term[string, string]("x"))
//
//	trees, err := earley.Parse(g, []string{"x", "x", "x"})
//
// For stepwise control, build a Chart with NewChart and drive it with
// ProcessOne/ProcessAll; Trace exposes the discovery log for diagnostic
// rendering.
//
// # Thread safety
//
// A Chart is not safe for concurrent use. Create separate charts for
// concurrent parses; a Grammar may be shared once fully built.
package earley
