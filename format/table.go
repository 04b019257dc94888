package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/swedgwood/earley-parser/earley"
)

// WriteChartTable renders the discovery-order trace log as a numbered table.
// History references appear as indices into the same table:
//
//	  0 | S ->•NP VP   |  0 |  0 |
//	  1 | NP ->•N      |  0 |  0 |
//	  ...
//	 17 | S -> NP•VP   |  0 |  1 | 4
func WriteChartTable[N, T comparable](w io.Writer, entries []earley.TraceEntry[N, T]) error {
	rules := make([]string, len(entries))
	width := 0
	for i, entry := range entries {
		rules[i] = entry.Edge.Rule().String()
		if n := utf8.RuneCountInString(rules[i]); n > width {
			width = n
		}
	}

	for i, entry := range entries {
		// Pad by rune count; the dot marker is multi-byte.
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(rules[i]))

		hist := make([]string, len(entry.History))
		for j, h := range entry.History {
			hist[j] = strconv.Itoa(h)
		}

		_, err := fmt.Fprintf(w, "%3d | %s%s | %2d | %2d | %s\n",
			entry.Index, rules[i], pad, entry.Edge.Start(), entry.Edge.End(),
			strings.Join(hist, " "))
		if err != nil {
			return err
		}
	}
	return nil
}
