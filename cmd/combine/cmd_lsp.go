package main

import (
	"github.com/dhamidi/combine/exprls"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the expression Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := exprls.NewServer("0.1.0")
			return server.RunStdio()
		},
	}
}
