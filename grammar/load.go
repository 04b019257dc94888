// Package grammar loads context-free grammars from EBNF source files and
// converts them into productions the chart parser can run.
package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/ebnf"

	"github.com/swedgwood/earley-parser/earley"
)

func nonterm(n string) earley.Symbol[string, string] { return earley.Nonterm[string, string](n) }

func term(t string) earley.Symbol[string, string] { return earley.Term[string, string](t) }

// Load reads an EBNF grammar file and converts it for chart parsing. An empty
// start selects the first production in the file.
func Load(filename, start string) (*earley.Grammar[string, string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(filename, f, start)
}

// Parse converts EBNF source into a grammar over string nonterminals and
// string tokens. Alternatives become separate productions; options,
// repetitions and grouped alternatives get synthesized helper nonterminals.
// Character ranges have no token-level equivalent and are rejected.
func Parse(filename string, src io.Reader, start string) (*earley.Grammar[string, string], error) {
	parsed, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start == "" {
		start = firstProduction(parsed)
	}
	if err := ebnf.Verify(parsed, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}

	conv := &converter{src: parsed, out: earley.NewGrammar[string, string](start)}
	for _, name := range productionsInOrder(parsed) {
		if err := conv.addProduction(name, parsed[name].Expr); err != nil {
			return nil, err
		}
	}
	if err := conv.out.Validate(); err != nil {
		return nil, err
	}
	return conv.out, nil
}

type converter struct {
	src   ebnf.Grammar
	out   *earley.Grammar[string, string]
	synth int
}

func (c *converter) addProduction(lhs string, expr ebnf.Expression) error {
	for _, alt := range alternatives(expr) {
		rhs, err := c.flatten(lhs, alt)
		if err != nil {
			return err
		}
		c.out.Rule(lhs, rhs...)
	}
	return nil
}

func (c *converter) flatten(lhs string, expr ebnf.Expression) ([]earley.Symbol[string, string], error) {
	switch x := expr.(type) {
	case nil:
		return nil, nil

	case *ebnf.Name:
		return []earley.Symbol[string, string]{nonterm(x.String)}, nil

	case *ebnf.Token:
		return []earley.Symbol[string, string]{term(x.String)}, nil

	case ebnf.Sequence:
		var rhs []earley.Symbol[string, string]
		for _, elem := range x {
			syms, err := c.flatten(lhs, elem)
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, syms...)
		}
		return rhs, nil

	case ebnf.Alternative:
		nt := c.fresh(lhs)
		if err := c.addProduction(nt, x); err != nil {
			return nil, err
		}
		return []earley.Symbol[string, string]{nonterm(nt)}, nil

	case *ebnf.Group:
		if _, nested := x.Body.(ebnf.Alternative); !nested {
			return c.flatten(lhs, x.Body)
		}
		nt := c.fresh(lhs)
		if err := c.addProduction(nt, x.Body); err != nil {
			return nil, err
		}
		return []earley.Symbol[string, string]{nonterm(nt)}, nil

	case *ebnf.Option:
		nt := c.fresh(lhs)
		c.out.Rule(nt)
		body, err := c.flatten(nt, x.Body)
		if err != nil {
			return nil, err
		}
		c.out.Rule(nt, body...)
		return []earley.Symbol[string, string]{nonterm(nt)}, nil

	case *ebnf.Repetition:
		// nt -> empty | nt body, so zero or more repetitions.
		nt := c.fresh(lhs)
		c.out.Rule(nt)
		body, err := c.flatten(nt, x.Body)
		if err != nil {
			return nil, err
		}
		c.out.Rule(nt, append([]earley.Symbol[string, string]{nonterm(nt)}, body...)...)
		return []earley.Symbol[string, string]{nonterm(nt)}, nil

	case *ebnf.Range:
		return nil, fmt.Errorf("%s: character ranges are not supported", x.Begin.StringPos)

	default:
		return nil, fmt.Errorf("unsupported grammar expression %T", expr)
	}
}

// fresh synthesizes a helper nonterminal name that cannot collide with any
// production declared in the source grammar.
func (c *converter) fresh(lhs string) string {
	for {
		c.synth++
		name := fmt.Sprintf("%s_%d", lhs, c.synth)
		if _, taken := c.src[name]; !taken {
			return name
		}
	}
}

func alternatives(expr ebnf.Expression) []ebnf.Expression {
	if alt, ok := expr.(ebnf.Alternative); ok {
		return alt
	}
	return []ebnf.Expression{expr}
}

func firstProduction(g ebnf.Grammar) string {
	first := ""
	for name, p := range g {
		if first == "" || p.Name.StringPos.Offset < g[first].Name.StringPos.Offset {
			first = name
		}
	}
	return first
}

func productionsInOrder(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return g[names[i]].Name.StringPos.Offset < g[names[j]].Name.StringPos.Offset
	})
	return names
}
