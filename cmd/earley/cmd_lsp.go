package main

import (
	"github.com/spf13/cobra"

	"github.com/swedgwood/earley-parser/grammar"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for grammar files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := grammar.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}
