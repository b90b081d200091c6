package syntax

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

// Rule selects the grammar rule a parse starts from.
type Rule uint8

const (
	RuleSourceFile Rule = iota // a whole file
	RuleExpr                   // a single inline expression
	RuleType                   // a single type
	RuleBlock                  // a braced statement block
)

var ruleNames = [...]string{
	RuleSourceFile: "file",
	RuleExpr:       "expr",
	RuleType:       "type",
	RuleBlock:      "block",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", r)
}

// ParseRule returns the rule with the given name.
func ParseRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name {
			return Rule(r), nil
		}
	}
	return 0, errors.Errorf("unknown rule %q (want one of %s)", name, strings.Join(ruleNames[:], ", "))
}

// Tree is the result of a parse.
type Tree struct {
	Filename string
	Source   string
	Root     *Node
	Errors   []*SyntaxError

	lines *LineIndex
}

// Pos returns the position of a byte offset in the tree's source.
func (t *Tree) Pos(offset int) Pos {
	return t.lines.Pos(offset)
}

// Err returns the first syntax error, or nil.
func (t *Tree) Err() error {
	if len(t.Errors) == 0 {
		return nil
	}
	return t.Errors[0]
}

// Option configures a parse.
type Option func(*config)

type config struct {
	filename string
	logger   *slog.Logger
	events   func([]Event)
}

// WithFilename sets the file name used in positions.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithLogger makes the parse log a summary record at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithEvents passes the raw event log to fn before the tree is built.
// fn must not retain or modify the slice.
func WithEvents(fn func([]Event)) Option {
	return func(c *config) { c.events = fn }
}

// Parse parses src starting at rule. It never fails: malformed input
// produces error nodes and entries in Tree.Errors.
//
// For RuleSourceFile the root is a SourceFile node. Other rules produce a
// Root node holding the rule's node, surrounding trivia and an error node
// for any input the rule did not consume.
func Parse(src string, rule Rule, opts ...Option) *Tree {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newParser(src)
	switch rule {
	case RuleSourceFile:
		sourceFile(p)
	case RuleExpr:
		fragment(p, func(p *parser) {
			p.setSkipper(SkipInline)
			expr(p)
			p.restoreSkipper()
		})
	case RuleType:
		fragment(p, typ)
	case RuleBlock:
		fragment(p, func(p *parser) { block(p) })
	default:
		panic(fmt.Sprintf("syntax: unknown rule %d", rule))
	}

	if cfg.events != nil {
		cfg.events(p.events)
	}
	nevents := len(p.events)
	root, errs := build(src, p.events)

	t := &Tree{
		Filename: cfg.filename,
		Source:   src,
		Root:     root,
		Errors:   errs,
		lines:    NewLineIndex(cfg.filename, src),
	}
	for _, e := range t.Errors {
		e.Pos = t.Pos(e.Offset)
	}

	if cfg.logger != nil {
		cfg.logger.Debug("parsed",
			slog.String("file", cfg.filename),
			slog.String("rule", rule.String()),
			slog.Int("bytes", len(src)),
			slog.Int("tokens", len(p.tokens)),
			slog.Int("events", nevents),
			slog.Int("errors", len(errs)))
	}
	return t
}

// fragment runs rule under a Root node and wraps whatever input the rule
// left over in one error node.
func fragment(p *parser, rule func(*parser)) {
	m := p.start()
	p.setSkipper(SkipBlock)
	rule(p)
	if !p.atEOF() {
		p.errorWant(ErrTokenRequired, EOF)
		em := p.start()
		for !p.atEOF() {
			p.eatAny()
		}
		em.complete(p, ErrorNode)
	}
	p.restoreSkipper()
	p.expect(EOF)
	m.complete(p, Root)
}

// ParseFile reads r in full and parses it as a source file.
func ParseFile(filename string, r io.Reader, opts ...Option) (*Tree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	opts = append([]Option{WithFilename(filename)}, opts...)
	return Parse(string(src), RuleSourceFile, opts...), nil
}
