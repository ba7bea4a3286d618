// Package normalize provides a canonical spelling of PPL queries for
// comparing queries that differ only in layout or keyword case.
package normalize

import (
	"context"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/parser"
	"github.com/sqlc-dev/ppl/token"
)

// Query returns the tokens of s separated by single spaces, with keywords
// upper-cased and "<>" spelled "!=". Keywords used as field or table names
// and string contents are kept as written. If s does not parse, every
// keyword is upper-cased.
func Query(s string) string {
	names := nameSpans(s)
	var parts []string
	for _, item := range lexer.Tokenize(s) {
		switch {
		case item.Token == token.EOF:
		case item.Token == token.NOT_EQUAL:
			parts = append(parts, "!=")
		case item.Token.IsKeyword() && !names.contains(item.Pos.Offset):
			parts = append(parts, strings.ToUpper(item.Value))
		default:
			parts = append(parts, item.Value)
		}
	}
	return strings.Join(parts, " ")
}

type span struct{ start, end int }

type spans []span

func (s spans) contains(offset int) bool {
	for _, sp := range s {
		if offset >= sp.start && offset < sp.end {
			return true
		}
	}
	return false
}

// nameSpans returns the byte ranges of s that the parser reads as names.
func nameSpans(s string) spans {
	root, err := parser.Parse(context.Background(), s,
		parser.WithMaxQueryLength(0), parser.WithMaxDepth(0))
	if err != nil {
		return nil
	}
	var out spans
	ast.Inspect(root, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.QualifiedName, *ast.WildcardQualifiedName, *ast.TableQualifiedName:
			out = append(out, span{n.Pos().Offset, n.End().Offset})
			return false
		}
		return n != nil
	})
	return out
}
