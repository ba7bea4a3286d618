package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/sqlc-dev/ppl/internal/config"
	"github.com/sqlc-dev/ppl/parser"
	"github.com/sqlc-dev/ppl/token"
)

const (
	prompt             = "ppl> "
	continuationPrompt = "...> "
)

var completionWords = func() []string {
	words := make([]string, 0, len(token.Keywords))
	for word := range token.Keywords {
		words = append(words, strings.ToLower(word))
	}
	sort.Strings(words)
	return words
}()

// startRepl reads queries line by line until EOF. A line ending in "|"
// continues on the next line.
func startRepl(ctx context.Context, r *renderer, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	historyFile := filepath.Join(os.TempDir(), ".pplparse_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit, ':format NAME' to change output")

	var buf strings.Builder
	for {
		p := prompt
		if buf.Len() > 0 {
			p = continuationPrompt
		}
		input, err := line.Prompt(p)
		if err == liner.ErrPromptAborted {
			buf.Reset()
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(input)
		if buf.Len() == 0 {
			switch {
			case trimmed == "":
				continue
			case trimmed == "exit" || trimmed == "quit":
				return nil
			case strings.HasPrefix(trimmed, ":"):
				replCommand(r, trimmed, out)
				continue
			}
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(input)
		if strings.HasSuffix(trimmed, "|") {
			continue
		}

		query := buf.String()
		buf.Reset()
		line.AppendHistory(strings.ReplaceAll(query, "\n", " "))
		if err := r.render(ctx, out, query); err != nil {
			var perr *parser.ParseError
			if !errors.As(err, &perr) {
				return err
			}
			printParseError(out, perr)
		}
	}
}

func replCommand(r *renderer, cmd string, out io.Writer) {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":format":
		if len(fields) != 2 {
			fmt.Fprintf(out, "output format is %s\n", r.format)
			return
		}
		cfg := config.Defaults()
		cfg.Output.Format = fields[1]
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintln(out, err)
			return
		}
		r.format = fields[1]
	default:
		fmt.Fprintf(out, "unknown command %s\n", fields[0])
	}
}

// complete suggests keywords for the last word of line.
func complete(line string) []string {
	i := strings.LastIndexAny(line, " \t|(,=")
	head, word := line[:i+1], strings.ToLower(line[i+1:])
	if word == "" {
		return nil
	}
	var out []string
	for _, w := range completionWords {
		if strings.HasPrefix(w, word) {
			out = append(out, head+w)
		}
	}
	return out
}
