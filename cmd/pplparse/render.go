package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/internal/config"
	"github.com/sqlc-dev/ppl/internal/normalize"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/parser"
	"github.com/sqlc-dev/ppl/token"
)

// renderer parses queries and writes them in the configured output format.
type renderer struct {
	format string
	opts   []parser.Option
}

func (r *renderer) render(ctx context.Context, w io.Writer, query string) error {
	if r.format == config.FormatTokens {
		return writeTokens(w, query)
	}

	root, err := parser.Parse(ctx, query, r.opts...)
	if err != nil {
		return err
	}

	switch r.format {
	case config.FormatJSON:
		b, err := ast.MarshalJSON(root)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case config.FormatPPL:
		_, err = fmt.Fprintln(w, parser.Format(root))
		return err
	case config.FormatNormalized:
		_, err = fmt.Fprintln(w, normalize.Query(parser.Format(root)))
		return err
	default:
		_, err = io.WriteString(w, parser.Explain(root))
		return err
	}
}

// writeTokens prints one token per line with its position.
func writeTokens(w io.Writer, query string) error {
	for _, item := range lexer.Tokenize(query) {
		if item.Token == token.EOF {
			break
		}
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", item.Pos.Line, item.Pos.Column, item.Token, item.Value); err != nil {
			return err
		}
	}
	return nil
}
