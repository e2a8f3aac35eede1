package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/jsonr/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var trailingCommas bool
	var anyRoot bool

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Parse JSON files and report the first error in each",
		Long: "Parse each file (or standard input when no files are given) and " +
			"report the first syntax error with its line and column.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []parser.Option
			if trailingCommas {
				opts = append(opts, parser.WithTrailingCommas())
			}
			if anyRoot {
				opts = append(opts, parser.WithAnyRoot())
			}

			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				if _, perr := parser.ParseWithDiagnostics(data, opts...); perr != nil {
					return fmt.Errorf("stdin: %s", perr.Message)
				}
				return nil
			}

			failed := 0
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				if _, perr := parser.ParseWithDiagnostics(data, opts...); perr != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, perr.Message)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files are invalid", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trailingCommas, "trailing-commas", false, "allow a trailing comma before ] and }")
	cmd.Flags().BoolVar(&anyRoot, "any-root", false, "allow a scalar root value")

	return cmd
}
