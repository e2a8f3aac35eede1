package main

import (
	"github.com/dhamidi/jsonr/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var trailingCommas bool
	var debug bool
	var verbosity int

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the diagnostics language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			var opts []lsp.ServerOption
			if trailingCommas {
				opts = append(opts, lsp.WithTrailingCommas())
			}
			if debug {
				opts = append(opts, lsp.WithDebug())
			}

			server := lsp.NewServer(version, opts...)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&trailingCommas, "trailing-commas", false, "allow a trailing comma before ] and }")
	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic")
	cmd.Flags().IntVar(&verbosity, "verbose", 0, "log verbosity")

	return cmd
}
