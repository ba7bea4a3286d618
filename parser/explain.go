package parser

import (
	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/internal/explain"
)

// Explain returns the indented tree output for a parsed query or node.
func Explain(node ast.Node) string {
	return explain.Explain(node)
}
