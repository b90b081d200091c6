package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/teya/internal/syntax"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a file",
		Long:  "Print every token of FILE, trivia included, with its position and text. Use - for standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}
			toks := syntax.Tokenize(src)
			a.logger.Debug("lexed", "file", args[0], "tokens", len(toks))
			return printTokens(cmd.OutOrStdout(), args[0], src, toks)
		},
	}
}

// printTokens writes one line per token: position, kind and quoted text.
func printTokens(w io.Writer, filename, src string, toks []syntax.Token) error {
	lines := syntax.NewLineIndex(filename, src)

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-16s %s\n", "POSITION", "TOKEN", "TEXT")
	fmt.Fprintf(&b, "%-20s %-16s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 16), strings.Repeat("-", 20))
	for _, t := range toks {
		fmt.Fprintf(&b, "%-20s %-16s %s\n", lines.Pos(t.Start), t.Kind, strconv.Quote(t.Text(src)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
