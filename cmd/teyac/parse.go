package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/teya/internal/syntax"
)

var treeFormats = []string{"text", "sexpr", "json", "yaml"}

func newParseCmd(a *app) *cobra.Command {
	var (
		rule   string
		format string
		trivia bool
	)
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a file or fragment",
		Long: `Parse FILE starting at a grammar rule and print the tree.

Rules: file, expr, type, block. Formats: text, sexpr, json, yaml.
Syntax errors are printed to standard error; the tree is printed
regardless. Use - for standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rule") {
				rule = a.cfg.Parse.Rule
			}
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Parse.Format
			}
			r, err := syntax.ParseRule(rule)
			if err != nil {
				return err
			}
			if !slices.Contains(treeFormats, format) {
				return errors.Errorf("unknown format %q", format)
			}

			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			tree := syntax.Parse(src, r, syntax.WithFilename(args[0]), syntax.WithLogger(a.logger))

			out := cmd.OutOrStdout()
			if err := printTree(out, tree.Root, format, trivia, newStyles(out, a.cfg.Parse.Color)); err != nil {
				return errors.Wrap(err, "writing tree")
			}
			return reportSyntaxErrors(cmd.ErrOrStderr(), tree, a.cfg.Parse.Color)
		},
	}
	cmd.Flags().StringVarP(&rule, "rule", "r", "file", "grammar rule to start from")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format")
	cmd.Flags().BoolVar(&trivia, "trivia", true, "include whitespace and comments in text, json and yaml output")
	return cmd
}

// printTree writes n in the given format.
func printTree(w io.Writer, n *syntax.Node, format string, trivia bool, st *styles) error {
	switch format {
	case "sexpr":
		_, err := fmt.Fprintln(w, syntax.Sexpr(n))
		return err
	case "json":
		return syntax.FprintJSON(w, n, trivia)
	case "yaml":
		return syntax.FprintYAML(w, n, trivia)
	}
	pr := &syntax.Printer{Trivia: trivia, Paint: st.paint()}
	return pr.Fprint(w, n)
}

// reportSyntaxErrors prints the errors of tree, one per line. It returns
// errDiagnostics if there were any.
func reportSyntaxErrors(w io.Writer, tree *syntax.Tree, color string) error {
	if len(tree.Errors) == 0 {
		return nil
	}
	st := newStyles(w, color)
	for _, e := range tree.Errors {
		fmt.Fprintln(w, st.diagnostic(e.Error()))
	}
	return errDiagnostics
}
