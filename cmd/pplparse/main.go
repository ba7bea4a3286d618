// Command pplparse parses PPL queries and prints their syntax tree.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	docopt "github.com/docopt/docopt-go"
	log "github.com/sirupsen/logrus"

	"github.com/sqlc-dev/ppl/internal/config"
	"github.com/sqlc-dev/ppl/parser"
)

const usage = `pplparse parses PPL queries and prints their syntax tree.

Usage:
  pplparse [--config=FILE --debug] tokens QUERY
  pplparse [--config=FILE --format=FORMAT --debug] repl
  pplparse [--config=FILE --format=FORMAT --debug] [QUERY]
  pplparse -h | --help

Options:
  -c FILE, --config=FILE      YAML configuration file. Defaults to $PPL_CONFIG
                              or ./pplparse.yaml when present.
  -f FORMAT, --format=FORMAT  Output format: explain, json, ppl, normalized
                              or tokens.
  --debug                     Log every grammar rule the parser enters.
  -h, --help                  Show this screen.

With no QUERY the query is read from standard input.

Examples:
  pplparse 'source=accounts | where age > 30 | fields firstname'
  pplparse --format=json 'search status=500 source=logs-*'
  echo 'source=t | head 5' | pplparse --format=ppl
`

type options struct {
	ConfigPath string `docopt:"--config"`
	Format     string `docopt:"--format"`
	Debug      bool   `docopt:"--debug"`
	Tokens     bool   `docopt:"tokens"`
	Repl       bool   `docopt:"repl"`
	Query      string `docopt:"QUERY"`
}

func parseArgs(argv []string) (*options, error) {
	opts, err := docopt.ParseArgs(usage, argv, "")
	if err != nil {
		return nil, fmt.Errorf("parsing command-line arguments: %w", err)
	}
	var o options
	if err := opts.Bind(&o); err != nil {
		return nil, fmt.Errorf("binding command-line arguments: %w", err)
	}
	return &o, nil
}

func main() {
	o, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(context.Background(), o, os.Stdin, os.Stdout); err != nil {
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			printParseError(os.Stderr, perr)
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

// run executes one invocation of the command.
func run(ctx context.Context, o *options, stdin io.Reader, stdout io.Writer) error {
	cfg, err := config.Load(o.ConfigPath, os.Getenv)
	if err != nil {
		return err
	}
	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Tokens {
		cfg.Output.Format = config.FormatTokens
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger := log.StandardLogger()
	if err := cfg.ConfigureLogger(logger); err != nil {
		return err
	}
	var trace *log.Entry
	if o.Debug {
		logger.SetLevel(log.DebugLevel)
		trace = log.NewEntry(logger).WithField("component", "parser")
	}
	r := &renderer{
		format: cfg.Output.Format,
		opts:   cfg.ParserOptions(trace),
	}

	if o.Repl {
		return startRepl(ctx, r, stdout)
	}

	query := o.Query
	if query == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading query: %w", err)
		}
		query = string(b)
	}
	log.WithFields(log.Fields{
		"format": cfg.Output.Format,
		"length": len(query),
	}).Debug("parsing query")
	return r.render(ctx, stdout, strings.TrimRight(query, "\n"))
}

func printParseError(w io.Writer, err *parser.ParseError) {
	fmt.Fprintf(w, "%s error %s: %v\n", err.Kind, err.Code, err)
	for _, hint := range err.Hints {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}
