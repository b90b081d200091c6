package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/teya/internal/syntax"
	"github.com/you-not-fish/teya/internal/types"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse a file and collect its declarations",
		Long: `Parse FILE, declare its items and resolve the types they use.

The package scope is printed on success. Syntax errors and declaration
errors are printed to standard error. Use - for standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			tree := syntax.Parse(src, syntax.RuleSourceFile, syntax.WithFilename(args[0]), syntax.WithLogger(a.logger))
			if err := reportSyntaxErrors(cmd.ErrOrStderr(), tree, a.cfg.Parse.Color); err != nil {
				return err
			}

			pkg, errs := types.Collect(tree)
			a.logger.Debug("collected", "file", args[0], "objects", pkg.Scope().NumObjects(), "errors", len(errs))
			if len(errs) > 0 {
				st := newStyles(cmd.ErrOrStderr(), a.cfg.Parse.Color)
				for _, e := range errs {
					fmt.Fprintln(cmd.ErrOrStderr(), st.diagnostic(e.Error()))
				}
				return errDiagnostics
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), pkg.Scope())
			return err
		},
	}
}
