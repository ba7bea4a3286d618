package explain

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

func explainInExpr(sb *strings.Builder, n *ast.InExpr, indent string, depth int) {
	header(sb, indent, "InExpr", 1+len(n.List))
	Node(sb, n.Value, depth+1)
	for _, lit := range n.List {
		Node(sb, lit, depth+1)
	}
}
