package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/token"
)

// Expression formats an expression.
func Expression(sb *strings.Builder, expr ast.Expression) {
	if expr == nil {
		return
	}

	switch e := expr.(type) {
	case *ast.LogicalOr:
		formatBinary(sb, e.Left, "OR", e.Right)
	case *ast.LogicalAnd:
		if e.Implicit {
			Expression(sb, e.Left)
			sb.WriteString(" ")
			Expression(sb, e.Right)
			return
		}
		formatBinary(sb, e.Left, "AND", e.Right)
	case *ast.LogicalXor:
		formatBinary(sb, e.Left, "XOR", e.Right)
	case *ast.LogicalNot:
		sb.WriteString("NOT ")
		Expression(sb, e.Expr)
	case *ast.ParentheticLogicalExpr:
		sb.WriteString("(")
		Expression(sb, e.Expr)
		sb.WriteString(")")
	case *ast.CompareExpr:
		formatBinary(sb, e.Left, e.Op, e.Right)
	case *ast.InExpr:
		Expression(sb, e.Value)
		sb.WriteString(" IN (")
		for i, lit := range e.List {
			if i > 0 {
				sb.WriteString(", ")
			}
			Literal(sb, lit)
		}
		sb.WriteString(")")
	case *ast.BinaryArithmetic:
		formatBinary(sb, e.Left, e.Op, e.Right)
	case *ast.ParentheticValueExpr:
		sb.WriteString("(")
		Expression(sb, e.Expr)
		sb.WriteString(")")
	case *ast.FieldExpression:
		QualifiedName(sb, e.Name)
	case *ast.EvalFunctionCall:
		sb.WriteString(e.Name)
		formatArgs(sb, e.Args)
	case *ast.BooleanFunctionCall:
		sb.WriteString(e.Name)
		formatArgs(sb, e.Args)
	case *ast.DataTypeFunctionCall:
		sb.WriteString("cast(")
		Expression(sb, e.Expr)
		sb.WriteString(" AS ")
		sb.WriteString(e.Type)
		sb.WriteString(")")
	case *ast.PositionFunctionCall:
		sb.WriteString("position(")
		Expression(sb, e.Substr)
		sb.WriteString(" IN ")
		Expression(sb, e.Str)
		sb.WriteString(")")
	case *ast.ExtractFunctionCall:
		sb.WriteString("extract(")
		sb.WriteString(e.Part)
		sb.WriteString(" FROM ")
		Expression(sb, e.Arg)
		sb.WriteString(")")
	case *ast.GetFormatFunctionCall:
		sb.WriteString("get_format(")
		sb.WriteString(e.Type)
		sb.WriteString(", ")
		Expression(sb, e.Arg)
		sb.WriteString(")")
	case *ast.TimestampFunctionCall:
		sb.WriteString(e.Name)
		sb.WriteString("(")
		sb.WriteString(e.Part)
		sb.WriteString(", ")
		Expression(sb, e.First)
		sb.WriteString(", ")
		Expression(sb, e.Second)
		sb.WriteString(")")
	case *ast.RelevanceFunction:
		formatRelevanceFunction(sb, e)
	case ast.Literal:
		Literal(sb, e)
	}
}

func formatBinary(sb *strings.Builder, left ast.Expression, op string, right ast.Expression) {
	Expression(sb, left)
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	Expression(sb, right)
}

// formatArgs formats a parenthesized argument list.
func formatArgs(sb *strings.Builder, args []*ast.FunctionArg) {
	sb.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		if arg.Name != "" {
			Ident(sb, arg.Name)
			sb.WriteString("=")
		}
		Expression(sb, arg.Value)
	}
	sb.WriteString(")")
}

func formatRelevanceFunction(sb *strings.Builder, fn *ast.RelevanceFunction) {
	sb.WriteString(fn.Name)
	sb.WriteString("(")
	if token.Lookup(strings.ToUpper(fn.Name)).Is(token.RelevanceMulti) {
		sb.WriteString("[")
		for i, f := range fn.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			Expression(sb, f.Field)
			if f.Weight != nil {
				sb.WriteString("^")
				Literal(sb, f.Weight)
			}
		}
		sb.WriteString("]")
	} else if len(fn.Fields) > 0 {
		Expression(sb, fn.Fields[0].Field)
	}
	sb.WriteString(", ")
	Expression(sb, fn.Query)
	for _, arg := range fn.Args {
		sb.WriteString(", ")
		sb.WriteString(arg.Name)
		sb.WriteString("=")
		Expression(sb, arg.Value)
	}
	sb.WriteString(")")
}

// Literal formats a literal value as written.
func Literal(sb *strings.Builder, lit ast.Literal) {
	switch l := lit.(type) {
	case *ast.StringLiteral:
		sb.WriteString(l.Raw)
	case *ast.IntegerLiteral:
		sb.WriteString(l.Raw)
	case *ast.DecimalLiteral:
		sb.WriteString(l.Raw)
	case *ast.BooleanLiteral:
		sb.WriteString(strconv.FormatBool(l.Value))
	case *ast.DatetimeLiteral:
		sb.WriteString(l.Kind)
		sb.WriteString(" '")
		sb.WriteString(strings.ReplaceAll(l.Value, "'", "''"))
		sb.WriteString("'")
	case *ast.IntervalLiteral:
		sb.WriteString("INTERVAL ")
		Expression(sb, l.Value)
		sb.WriteString(" ")
		sb.WriteString(l.Unit)
	}
}

// QualifiedName formats a dotted field name.
func QualifiedName(sb *strings.Builder, name *ast.QualifiedName) {
	for i, part := range name.Parts {
		if i > 0 {
			sb.WriteString(".")
		}
		Ident(sb, part)
	}
}

// WildcardName formats a dotted name whose parts may contain "*".
func WildcardName(sb *strings.Builder, name *ast.WildcardQualifiedName) {
	for i, part := range name.Parts {
		if i > 0 {
			sb.WriteString(".")
		}
		if plainWildcard(part) {
			sb.WriteString(part)
		} else {
			quote(sb, part)
		}
	}
}

// Ident formats a name segment, quoting it with backticks when it would not
// scan back as the same identifier.
func Ident(sb *strings.Builder, name string) {
	if strings.HasPrefix(name, ".") && plainIdent(name[1:]) {
		sb.WriteString(name)
		return
	}
	if plainIdent(name) {
		sb.WriteString(name)
		return
	}
	quote(sb, name)
}

func quote(sb *strings.Builder, name string) {
	sb.WriteString("`")
	sb.WriteString(strings.ReplaceAll(name, "`", "``"))
	sb.WriteString("`")
}

func plainWildcard(atom string) bool {
	if atom == "" {
		return false
	}
	for _, piece := range strings.Split(atom, "*") {
		if piece != "" && !plainIdent(piece) {
			return false
		}
	}
	return true
}

func plainIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '@' || unicode.IsLetter(r):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	tok := token.Lookup(strings.ToUpper(name))
	switch tok {
	case token.DATE, token.TIME, token.TIMESTAMP:
		// would scan as a datetime literal before a string
		return false
	}
	return tok.CanBeIdent()
}
