// Command teyac is the Teya front-end driver. It prints token streams
// and syntax trees, collects declarations and runs an interactive parser.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/teya/internal/config"
)

// Version information
const Version = "0.1.0-dev"

// errDiagnostics is returned by commands that have already printed the
// problems they found. It only sets the exit status.
var errDiagnostics = errors.New("diagnostics reported")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(&app{})
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// app holds the state shared by all commands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "teyac",
		Short: "Teya front end",
		Long: `teyac parses Teya source and reports what it finds.

Commands:
  tokens  - print the token stream of a file
  parse   - print the syntax tree of a file or fragment
  check   - parse a file and collect its declarations
  repl    - parse one line at a time`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./teya.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(stderr io.Writer) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	a.logger = a.cfg.Log.NewLogger(stderr)
	return nil
}

// readSource reads the named file, or standard input for "-".
func readSource(cmd *cobra.Command, filename string) (string, error) {
	var (
		src []byte
		err error
	)
	if filename == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(filename)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", filename)
	}
	return string(src), nil
}
