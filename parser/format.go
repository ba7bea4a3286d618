package parser

import (
	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/internal/format"
)

// Format returns the PPL text of a parsed query. Parsing the result yields
// an equivalent tree.
func Format(root *ast.Root) string {
	return format.Format(root)
}
