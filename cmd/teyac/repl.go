package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/teya/internal/syntax"
)

const (
	prompt      = "teya> "
	historyFile = ".teya_history"
)

var replCommands = []string{":quit", ":rule "}

func newReplCmd(a *app) *cobra.Command {
	var rule string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse one line at a time",
		Long: `Read lines interactively, parse each one and print its tree as an
S-expression followed by any syntax errors.

Commands:
  :rule NAME  switch to rule file, expr, type or block
  :quit       exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := syntax.ParseRule(rule)
			if err != nil {
				return err
			}
			return runRepl(cmd.OutOrStdout(), &session{rule: r, logger: a.logger})
		},
	}
	cmd.Flags().StringVarP(&rule, "rule", "r", "expr", "grammar rule to start from")
	return cmd
}

func runRepl(out io.Writer, s *session) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintf(out, "teyac %s (rule %s). Type :quit to exit.\n", Version, s.rule)
	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}

		res, quit := s.eval(line)
		if quit {
			return nil
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if res != "" {
			fmt.Fprintln(out, res)
		}
	}
}

// session is the state of an interactive loop.
type session struct {
	rule   syntax.Rule
	logger *slog.Logger
}

// eval handles one input line, either a command or source text. It
// returns the text to print and whether the loop should stop.
func (s *session) eval(line string) (string, bool) {
	cmd := strings.TrimSpace(line)
	switch {
	case cmd == "":
		return "", false
	case cmd == ":quit" || cmd == ":q":
		return "", true
	case cmd == ":rule" || strings.HasPrefix(cmd, ":rule "):
		name := strings.TrimSpace(strings.TrimPrefix(cmd, ":rule"))
		if name == "" {
			return "rule " + s.rule.String(), false
		}
		r, err := syntax.ParseRule(name)
		if err != nil {
			return err.Error(), false
		}
		s.rule = r
		return "rule " + r.String(), false
	case strings.HasPrefix(cmd, ":"):
		return fmt.Sprintf("unknown command %s (try :rule NAME or :quit)", cmd), false
	}
	if s.logger != nil {
		s.logger.Debug("eval", "rule", s.rule.String(), "bytes", len(line))
	}
	return evalLine(line, s.rule), false
}

// evalLine parses line with rule and returns the S-expression of the
// tree followed by one line per syntax error.
func evalLine(line string, rule syntax.Rule) string {
	tree := syntax.Parse(line, rule, syntax.WithFilename("<repl>"))
	var b strings.Builder
	b.WriteString(syntax.Sexpr(tree.Root))
	for _, e := range tree.Errors {
		b.WriteByte('\n')
		b.WriteString(e.Error())
	}
	return b.String()
}

// complete offers the REPL commands and, after :rule, the rule names.
func complete(line string) []string {
	var out []string
	if strings.HasPrefix(line, ":rule ") {
		prefix := strings.TrimPrefix(line, ":rule ")
		for _, name := range []string{"file", "expr", "type", "block"} {
			if strings.HasPrefix(name, prefix) {
				out = append(out, ":rule "+name)
			}
		}
		return out
	}
	for _, c := range replCommands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}
	return out
}
