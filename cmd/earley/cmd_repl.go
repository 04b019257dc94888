package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/swedgwood/earley-parser/earley"
	"github.com/swedgwood/earley-parser/format"
	"github.com/swedgwood/earley-parser/grammar"
)

const historyFile = ".earley_history"

func newReplCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "repl <grammar>",
		Short:         "Interactively parse token sequences against an EBNF grammar",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0], startProduction)
			if err != nil {
				return err
			}
			return runRepl(g)
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production (default: first production in the file)")

	return cmd
}

func runRepl(g *earley.Grammar[string, string]) error {
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt("==> ")
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		ln.AppendHistory(line)

		trees, err := earley.Parse(g, tokens)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := format.WriteTrees(os.Stdout, trees); err != nil {
			return err
		}
	}
}
