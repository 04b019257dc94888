package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/swedgwood/earley-parser/earley"
)

// WriteTree renders a derivation tree as multi-line ASCII art, parent above
// children:
//
//	S
//	|____
//	|    |
//	|    VP
//	|    |___
//	|    |   |
//	NP   |   NP
//	|    |   |
//	N    V   N
//	|    |   |
//	they can fish
func WriteTree[N, T comparable](w io.Writer, t *earley.Tree[N, T]) error {
	_, err := io.WriteString(w, renderTree(t))
	return err
}

func renderTree[N, T comparable](t *earley.Tree[N, T]) string {
	label := t.Symbol.String()
	switch len(t.Children) {
	case 0:
		return label
	case 1:
		return label + "\n|\n" + renderTree(t.Children[0])
	}

	// Render each subtree bottom-up so padding appends at the top.
	columns := make([][]string, len(t.Children))
	maxHeight := 0
	for i, child := range t.Children {
		lines := strings.Split(renderTree(child), "\n")
		reverseLines(lines)
		columns[i] = lines
		if len(lines) > maxHeight {
			maxHeight = len(lines)
		}
	}

	// Equalize heights with "|" connectors, pad all but the rightmost
	// subtree to a uniform width, and track how far the branch line under
	// the parent must extend.
	branchLen := 0
	for i, col := range columns {
		for len(col) < maxHeight+1 {
			col = append(col, "|")
		}
		width := 0
		for _, line := range col {
			if len(line) > width {
				width = len(line)
			}
		}
		if i != len(columns)-1 {
			branchLen += width + 1
			for j, line := range col {
				col[j] = line + strings.Repeat(" ", width-len(line)+1)
			}
		}
		columns[i] = col
	}

	lines := make([]string, 0, maxHeight+3)
	for row := 0; row < maxHeight+1; row++ {
		var b strings.Builder
		for _, col := range columns {
			b.WriteString(col[row])
		}
		lines = append(lines, b.String())
	}
	lines = append(lines, "|"+strings.Repeat("_", branchLen-1))
	lines = append(lines, label)
	reverseLines(lines)

	return strings.Join(lines, "\n")
}

func reverseLines(lines []string) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}

// WriteTrees renders every derivation tree, numbered, followed by the parse
// count.
func WriteTrees[N, T comparable](w io.Writer, trees []*earley.Tree[N, T]) error {
	for i, t := range trees {
		if _, err := fmt.Fprintf(w, "Derivation %d:\n", i+1); err != nil {
			return err
		}
		if err := WriteTree(w, t); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Num parses: %d\n", len(trees))
	return err
}
