package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/you-not-fish/teya/internal/config"
	"github.com/you-not-fish/teya/internal/syntax"
)

func TestRunVersion(t *testing.T) {
	code, out, errOut := runTeyac(t, "", "version")
	if code != 0 {
		t.Fatalf("version exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "teyac version "+Version) {
		t.Fatalf("version output missing version:\n%s", out)
	}
	if !strings.Contains(out, runtime.Version()) {
		t.Fatalf("version output missing go version:\n%s", out)
	}
}

func TestRunTokens(t *testing.T) {
	filename := writeTempTeyaFile(t, "fn main() {}\n")
	code, out, errOut := runTeyac(t, "", "tokens", filename)

	if code != 0 {
		t.Fatalf("tokens exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "POSITION") {
		t.Fatalf("tokens output missing header:\n%s", out)
	}
	if !strings.Contains(lines[2], filename+":1:1") || !strings.Contains(lines[2], `"fn"`) {
		t.Fatalf("first token line = %q", lines[2])
	}
	if !strings.Contains(lines[len(lines)-1], "EOF") {
		t.Fatalf("last token line = %q", lines[len(lines)-1])
	}
}

func TestRunTokensStdin(t *testing.T) {
	code, out, errOut := runTeyac(t, "a", "tokens", "-")
	if code != 0 {
		t.Fatalf("tokens exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(out, "-:1:1") || !strings.Contains(out, `Ident`) || !strings.Contains(out, `"a"`) {
		t.Fatalf("tokens output missing identifier:\n%s", out)
	}
}

func TestRunParseFormats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"sexpr", []string{"(Root (BinaryExpr (VarRef a) + (VarRef b)))\n"}},
		{"text", []string{"Root 0..5\n", "  BinaryExpr 0..5\n", `'+' 2..3 "+"`}},
		{"yaml", []string{"kind: Root", "kind: BinaryExpr", "kind: VarRef"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			code, out, errOut := runTeyac(t, "a + b", "parse", "--rule", "expr", "--format", tt.format, "-")
			if code != 0 {
				t.Fatalf("parse exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			if strings.Contains(out, "\x1b[") {
				t.Errorf("output to a buffer is coloured:\n%q", out)
			}
		})
	}
}

func TestRunParseJSON(t *testing.T) {
	code, out, errOut := runTeyac(t, "a + b", "parse", "-r", "expr", "-f", "json", "--trivia=false", "-")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}

	var root struct {
		Kind     string `json:"kind"`
		Children []struct {
			Kind string `json:"kind"`
		} `json:"children"`
	}
	if err := json.Unmarshal([]byte(out), &root); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if root.Kind != "Root" {
		t.Errorf("root kind = %q, want Root", root.Kind)
	}
	if len(root.Children) == 0 || root.Children[0].Kind != "BinaryExpr" {
		t.Errorf("children = %+v, want BinaryExpr first", root.Children)
	}
	if strings.Contains(out, "Space") {
		t.Errorf("trivia in output without --trivia:\n%s", out)
	}
}

func TestRunParseSyntaxError(t *testing.T) {
	filename := writeTempTeyaFile(t, "fn f() {")
	code, out, errOut := runTeyac(t, "", "parse", "-f", "sexpr", filename)

	if code != 1 {
		t.Fatalf("parse exit=%d, want 1", code)
	}
	if !strings.HasPrefix(out, "(SourceFile (FnDecl") {
		t.Errorf("tree not printed despite errors:\n%s", out)
	}
	if want := filename + `:1:9: expected "}"`; !strings.Contains(errOut, want) {
		t.Errorf("stderr missing %q:\n%s", want, errOut)
	}
	if strings.Contains(errOut, "error:") {
		t.Errorf("diagnostics reported twice:\n%s", errOut)
	}
}

func TestRunUsageErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.teya")
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"rule", []string{"parse", "-r", "stmt", "-"}, `error: unknown rule "stmt"`},
		{"format", []string{"parse", "-f", "xml", "-"}, `error: unknown format "xml"`},
		{"file", []string{"check", missing}, "error: reading " + missing},
		{"args", []string{"tokens"}, "error: accepts 1 arg(s), received 0"},
		{"command", []string{"build"}, `error: unknown command "build"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runTeyac(t, "", tt.args...)
			if code != 1 {
				t.Fatalf("exit=%d, want 1", code)
			}
			if !strings.Contains(errOut, tt.want) {
				t.Errorf("stderr missing %q:\n%s", tt.want, errOut)
			}
		})
	}
}

func TestRunCheck(t *testing.T) {
	src := `struct Point {
    x: Int
    y: Int
}

fn main() {
    let p = 1
}
`
	filename := writeTempTeyaFile(t, src)
	code, out, errOut := runTeyac(t, "", "check", filename)

	if code != 0 {
		t.Fatalf("check exit=%d\nstderr:\n%s\nstdout:\n%s", code, errOut, out)
	}
	if !strings.HasPrefix(out, "scope package input {\n") {
		t.Fatalf("check output missing package scope:\n%s", out)
	}
	for _, w := range []string{"fn main: fn()\n", "type Point: Point\n"} {
		if !strings.Contains(out, w) {
			t.Errorf("check output missing %q:\n%s", w, out)
		}
	}
}

func TestRunCheckErrors(t *testing.T) {
	filename := writeTempTeyaFile(t, "fn f(x: Foo) {}\nconst N = 1\nconst N = 2\n")
	code, out, errOut := runTeyac(t, "", "check", filename)

	if code != 1 {
		t.Fatalf("check exit=%d, want 1", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout:\n%s", out)
	}
	for _, w := range []string{filename + ":1:9: undefined: Foo", filename + ":3:7: N redeclared in this block"} {
		if !strings.Contains(errOut, w) {
			t.Errorf("stderr missing %q:\n%s", w, errOut)
		}
	}
}

func TestRunCheckStopsOnSyntaxErrors(t *testing.T) {
	code, out, errOut := runTeyac(t, "struct {", "check", "-")
	if code != 1 {
		t.Fatalf("check exit=%d, want 1", code)
	}
	if out != "" {
		t.Errorf("unexpected stdout:\n%s", out)
	}
	if !strings.Contains(errOut, "-:1:") {
		t.Errorf("stderr missing syntax error:\n%s", errOut)
	}
}

func TestRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teya.toml")
	cfg := `[parse]
rule = "expr"
format = "sexpr"
color = "always"
`
	if err := os.WriteFile(path, []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, out, errOut := runTeyac(t, "1 * 2", "--config", path, "parse", "-")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if want := "(Root (BinaryExpr (NumberLit 1) * (NumberLit 2)))\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	// Flags win over the file.
	code, out, _ = runTeyac(t, "Int", "--config", path, "parse", "-r", "type", "-f", "text", "-")
	if code != 0 {
		t.Fatalf("parse exit=%d", code)
	}
	if !strings.Contains(out, "\x1b[") || !strings.Contains(out, "TypeRef") {
		t.Errorf("expected coloured text output:\n%q", out)
	}
}

func TestRunConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teya.toml")
	if err := os.WriteFile(path, []byte("[parse]\nformat = \"sexpr\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvVar, path)

	var out, errOut bytes.Buffer
	if code := run([]string{"parse", "-r", "expr", "-"}, strings.NewReader("x"), &out, &errOut); code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut.String())
	}
	if got, want := out.String(), "(Root (VarRef x))\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRunBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teya.toml")
	if err := os.WriteFile(path, []byte("[parse]\nrule = \"stmt\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	code, _, errOut := runTeyac(t, "", "--config", path, "version")
	if code != 1 {
		t.Fatalf("exit=%d, want 1", code)
	}
	if !strings.Contains(errOut, "error: ") || !strings.Contains(errOut, "parse.rule") {
		t.Errorf("stderr missing config error:\n%s", errOut)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, errOut := runTeyac(t, "a", "-v", "parse", "-r", "expr", "-")
	if code != 0 {
		t.Fatalf("parse exit=%d\nstderr:\n%s", code, errOut)
	}
	if !strings.Contains(errOut, "level=DEBUG") || !strings.Contains(errOut, "msg=parsed") {
		t.Errorf("stderr missing debug log:\n%s", errOut)
	}

	code, _, errOut = runTeyac(t, "a", "parse", "-r", "expr", "-")
	if code != 0 || errOut != "" {
		t.Errorf("quiet run: exit=%d stderr=%q", code, errOut)
	}
}

func TestStyles(t *testing.T) {
	var buf bytes.Buffer
	if p := newStyles(&buf, "auto").paint(); p != nil {
		t.Error("auto mode colours a buffer")
	}
	if p := newStyles(&buf, "never").paint(); p != nil {
		t.Error("never mode has a paint function")
	}
	if got := newStyles(&buf, "never").diagnostic("oops"); got != "oops" {
		t.Errorf("plain diagnostic = %q", got)
	}

	st := newStyles(&buf, "always")
	p := st.paint()
	if p == nil {
		t.Fatal("always mode has no paint function")
	}
	if got := p(syntax.PaintNode, "Root"); !strings.Contains(got, "\x1b[") || !strings.Contains(got, "Root") {
		t.Errorf("painted label = %q", got)
	}
	if got := st.diagnostic("oops"); !strings.Contains(got, "\x1b[") {
		t.Errorf("coloured diagnostic = %q", got)
	}
}

func TestPrintTokens(t *testing.T) {
	src := "x = 1"
	var buf bytes.Buffer
	if err := printTokens(&buf, "", src, syntax.Tokenize(src)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if got, want := lines[2], fmt.Sprintf("%-20s %-16s %s", "1:1", "Ident", `"x"`); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
	if got, want := lines[4], fmt.Sprintf("%-20s %-16s %s", "1:3", "=", `"="`); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestSessionEval(t *testing.T) {
	s := &session{rule: syntax.RuleExpr}
	tests := []struct {
		line string
		want string
		quit bool
	}{
		{"", "", false},
		{"a + b", "(Root (BinaryExpr (VarRef a) + (VarRef b)))", false},
		{":rule", "rule expr", false},
		{":rule type", "rule type", false},
		{"[Int; 3]", "(Root (ArrayType [ (TypeRef Int) ; 3 ]))", false},
		{":rule stmt", `unknown rule "stmt" (want one of file, expr, type, block)`, false},
		{":rule", "rule type", false},
		{":help", "unknown command :help (try :rule NAME or :quit)", false},
		{"  :q  ", "", true},
		{":quit", "", true},
	}
	for _, tt := range tests {
		got, quit := s.eval(tt.line)
		if got != tt.want || quit != tt.quit {
			t.Errorf("eval(%q) = %q, %v; want %q, %v", tt.line, got, quit, tt.want, tt.quit)
		}
	}
}

func TestEvalLineErrors(t *testing.T) {
	got := evalLine("1 +", syntax.RuleExpr)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("evalLine = %q, want tree and errors", got)
	}
	if !strings.HasPrefix(lines[0], "(Root (BinaryExpr (NumberLit 1) +") {
		t.Errorf("tree = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "<repl>:1:") {
		t.Errorf("error = %q", lines[1])
	}
}

func TestComplete(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{":", []string{":quit", ":rule "}},
		{":q", []string{":quit"}},
		{":rule ", []string{":rule file", ":rule expr", ":rule type", ":rule block"}},
		{":rule b", []string{":rule block"}},
		{"x", nil},
	}
	for _, tt := range tests {
		got := complete(tt.line)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("complete(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

// runTeyac runs the command line with stdin and returns the exit code
// and both outputs. The user's config file is never read.
func runTeyac(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv(config.EnvVar, filepath.Join(t.TempDir(), "none.toml"))

	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTempTeyaFile(t *testing.T, src string) string {
	t.Helper()

	dir := t.TempDir()
	filename := filepath.Join(dir, "input.teya")
	if err := os.WriteFile(filename, []byte(src), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return filename
}
