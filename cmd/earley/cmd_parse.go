package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/swedgwood/earley-parser/earley"
	"github.com/swedgwood/earley-parser/format"
	"github.com/swedgwood/earley-parser/grammar"
)

func newParseCmd() *cobra.Command {
	var (
		startProduction string
		outputFormat    string
		showTrace       bool
	)

	cmd := &cobra.Command{
		Use:           "parse <grammar> [tokens...]",
		Short:         "Parse a token sequence against an EBNF grammar",
		Long:          "Parse a token sequence against an EBNF grammar.\n\nTokens come from the arguments, or whitespace-split from stdin when absent.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0], startProduction)
			if err != nil {
				return err
			}

			tokens := args[1:]
			if len(tokens) == 0 {
				input, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				tokens = strings.Fields(string(input))
			}

			chart, err := earley.NewChart(g, tokens)
			if err != nil {
				return err
			}
			chart.ProcessAll()

			log := commonlog.GetLogger("earley.parse")
			log.Debugf("chart fixed point: %d edges, %d complete derivations for %d tokens",
				len(chart.Edges()), len(chart.CompleteDerivations()), len(tokens))

			out := cmd.OutOrStdout()
			if showTrace {
				if err := format.WriteChartTable(out, chart.Trace()); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}

			trees, err := chart.DerivationTrees()
			if err != nil {
				return err
			}

			switch outputFormat {
			case "tree":
				return format.WriteTrees(out, trees)
			case "json":
				if err := format.NewJSONEncoder[string, string](out).Encode(trees); err != nil {
					return err
				}
				_, err := fmt.Fprintln(out)
				return err
			default:
				return fmt.Errorf("unknown output format %q", outputFormat)
			}
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production (default: first production in the file)")
	cmd.Flags().StringVar(&outputFormat, "format", "tree", "output format: tree or json")
	cmd.Flags().BoolVar(&showTrace, "trace", false, "print the chart discovery table before the derivations")

	return cmd
}
