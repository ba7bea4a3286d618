package explain

import (
	"strconv"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

// explainLiteral writes a literal in its source form.
func explainLiteral(sb *strings.Builder, lit ast.Literal, indent string) {
	sb.WriteString(indent)
	sb.WriteString(FormatLiteral(lit))
	sb.WriteString("\n")
}

// FormatLiteral returns the node label of a literal: its type followed by
// the value as written.
func FormatLiteral(lit ast.Literal) string {
	switch l := lit.(type) {
	case *ast.StringLiteral:
		return "StringLiteral " + l.Raw
	case *ast.IntegerLiteral:
		return "IntegerLiteral " + l.Raw
	case *ast.DecimalLiteral:
		return "DecimalLiteral " + l.Raw
	case *ast.BooleanLiteral:
		return "BooleanLiteral " + strconv.FormatBool(l.Value)
	case *ast.DatetimeLiteral:
		return "DatetimeLiteral " + l.Kind + " " + quoteString(l.Value)
	}
	return "Literal"
}

// quoteString wraps s in single quotes, doubling embedded quotes.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
