// Package explain renders a PPL AST as an indented tree, one node per line.
package explain

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

// Explain returns the tree output for a node.
func Explain(node ast.Node) string {
	var sb strings.Builder
	Node(&sb, node, 0)
	return sb.String()
}

// Node writes the tree output for an AST node.
func Node(sb *strings.Builder, node ast.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	switch n := node.(type) {
	// Statements
	case *ast.Root:
		explainRoot(sb, n, indent, depth)
	case *ast.QueryStatement:
		explainQueryStatement(sb, n, indent, depth)

	// Entry commands
	case *ast.SearchCommand:
		explainSearchCommand(sb, n, indent, depth)
	case *ast.DescribeCommand:
		header(sb, indent, "DescribeCommand", 1)
		Node(sb, n.Sources, depth+1)
	case *ast.ShowDataSourcesCommand:
		header(sb, indent, "ShowDataSourcesCommand", 0)

	// Sources
	case *ast.FromClause:
		explainFromClause(sb, n, indent, depth)
	case *ast.TableSourceClause:
		explainTableSourceClause(sb, n, indent, depth)
	case *ast.TableSource:
		explainTableSource(sb, n, indent)
	case *ast.TableFunction:
		explainTableFunction(sb, n, indent, depth)

	// Pipeline commands
	case *ast.WhereCommand:
		header(sb, indent, "WhereCommand", 1)
		Node(sb, n.Filter, depth+1)
	case *ast.FieldsCommand:
		explainFieldsCommand(sb, n, indent, depth)
	case *ast.RenameCommand:
		explainRenameCommand(sb, n, indent, depth)
	case *ast.StatsCommand:
		explainStatsCommand(sb, n, indent, depth)
	case *ast.DedupCommand:
		explainDedupCommand(sb, n, indent, depth)
	case *ast.SortCommand:
		explainSortCommand(sb, n, indent, depth)
	case *ast.EvalCommand:
		explainEvalCommand(sb, n, indent, depth)
	case *ast.HeadCommand:
		explainHeadCommand(sb, n, indent, depth)
	case *ast.TopCommand:
		explainTopCommand(sb, n, indent, depth)
	case *ast.RareCommand:
		explainRareCommand(sb, n, indent, depth)
	case *ast.GrokCommand:
		header(sb, indent, "GrokCommand", 2)
		Node(sb, n.Source, depth+1)
		Node(sb, n.Pattern, depth+1)
	case *ast.ParseCommand:
		header(sb, indent, "ParseCommand", 2)
		Node(sb, n.Source, depth+1)
		Node(sb, n.Pattern, depth+1)
	case *ast.PatternsCommand:
		explainPatternsCommand(sb, n, indent, depth)
	case *ast.KmeansCommand:
		explainCommandArgs(sb, "KmeansCommand", n.Params, indent, depth)
	case *ast.AdCommand:
		explainCommandArgs(sb, "AdCommand", n.Params, indent, depth)
	case *ast.MlCommand:
		explainCommandArgs(sb, "MlCommand", n.Args, indent, depth)

	// Clauses
	case *ast.RenameClause:
		header(sb, indent, "RenameClause", 2)
		Node(sb, n.From, depth+1)
		Node(sb, n.To, depth+1)
	case *ast.ByClause:
		explainByClause(sb, n, indent, depth)
	case *ast.StatsByClause:
		explainStatsByClause(sb, n, indent, depth)
	case *ast.BySpanClause:
		explainBySpanClause(sb, n, indent, depth)
	case *ast.SpanClause:
		explainSpanClause(sb, n, indent, depth)
	case *ast.SortField:
		explainSortField(sb, n, indent, depth)
	case *ast.EvalClause:
		header(sb, indent, "EvalClause", 2)
		Node(sb, n.Field, depth+1)
		Node(sb, n.Expr, depth+1)
	case *ast.StatsAggTerm:
		explainStatsAggTerm(sb, n, indent, depth)
	case *ast.PatternsParameter:
		header(sb, indent, "PatternsParameter "+n.Key, 1)
		Node(sb, n.Value, depth+1)
	case *ast.CommandArg:
		header(sb, indent, "CommandArg "+n.Key, 1)
		Node(sb, n.Value, depth+1)

	// Stats functions
	case *ast.StatsFunctionCall:
		header(sb, indent, "StatsFunctionCall "+n.Name, 1)
		Node(sb, n.Arg, depth+1)
	case *ast.CountAllFunctionCall:
		header(sb, indent, "CountAllFunctionCall "+n.Name, 0)
	case *ast.DistinctCountFunctionCall:
		header(sb, indent, "DistinctCountFunctionCall "+n.Name, 1)
		Node(sb, n.Arg, depth+1)
	case *ast.PercentileAggFunctionCall:
		header(sb, indent, "PercentileAggFunctionCall "+n.Percent.Raw, 1)
		Node(sb, n.Field, depth+1)
	case *ast.TakeAggFunctionCall:
		explainTakeAggFunctionCall(sb, n, indent, depth)

	// Logical and comparison expressions
	case *ast.LogicalOr:
		explainBinary(sb, "LogicalOr", n.Left, n.Right, indent, depth)
	case *ast.LogicalAnd:
		label := "LogicalAnd"
		if n.Implicit {
			label += " implicit"
		}
		explainBinary(sb, label, n.Left, n.Right, indent, depth)
	case *ast.LogicalXor:
		explainBinary(sb, "LogicalXor", n.Left, n.Right, indent, depth)
	case *ast.LogicalNot:
		header(sb, indent, "LogicalNot", 1)
		Node(sb, n.Expr, depth+1)
	case *ast.ParentheticLogicalExpr:
		header(sb, indent, "ParentheticLogicalExpr", 1)
		Node(sb, n.Expr, depth+1)
	case *ast.CompareExpr:
		explainBinary(sb, "CompareExpr "+n.Op, n.Left, n.Right, indent, depth)
	case *ast.InExpr:
		explainInExpr(sb, n, indent, depth)

	// Value expressions
	case *ast.BinaryArithmetic:
		explainBinary(sb, "BinaryArithmetic "+n.Op, n.Left, n.Right, indent, depth)
	case *ast.ParentheticValueExpr:
		header(sb, indent, "ParentheticValueExpr", 1)
		Node(sb, n.Expr, depth+1)
	case *ast.FieldExpression:
		header(sb, indent, "FieldExpression "+n.Name.String(), 0)

	// Functions
	case *ast.EvalFunctionCall:
		explainFunctionCall(sb, "EvalFunctionCall", n.Name, n.Args, indent, depth)
	case *ast.BooleanFunctionCall:
		explainFunctionCall(sb, "BooleanFunctionCall", n.Name, n.Args, indent, depth)
	case *ast.FunctionArg:
		explainFunctionArg(sb, n, indent, depth)
	case *ast.DataTypeFunctionCall:
		header(sb, indent, "DataTypeFunctionCall "+n.Type, 1)
		Node(sb, n.Expr, depth+1)
	case *ast.PositionFunctionCall:
		explainBinary(sb, "PositionFunctionCall", n.Substr, n.Str, indent, depth)
	case *ast.ExtractFunctionCall:
		header(sb, indent, "ExtractFunctionCall "+n.Part, 1)
		Node(sb, n.Arg, depth+1)
	case *ast.GetFormatFunctionCall:
		header(sb, indent, "GetFormatFunctionCall "+n.Type, 1)
		Node(sb, n.Arg, depth+1)
	case *ast.TimestampFunctionCall:
		explainBinary(sb, "TimestampFunctionCall "+n.Name+" "+n.Part, n.First, n.Second, indent, depth)
	case *ast.RelevanceFunction:
		explainRelevanceFunction(sb, n, indent, depth)
	case *ast.RelevanceFieldAndWeight:
		explainRelevanceField(sb, n, indent, depth)

	// Names
	case *ast.QualifiedName:
		header(sb, indent, "QualifiedName "+n.String(), 0)
	case *ast.WildcardQualifiedName:
		header(sb, indent, "WildcardQualifiedName "+n.String(), 0)
	case *ast.TableQualifiedName:
		header(sb, indent, "TableQualifiedName "+n.String(), 0)

	// Literals
	case *ast.StringLiteral, *ast.IntegerLiteral, *ast.DecimalLiteral,
		*ast.BooleanLiteral, *ast.DatetimeLiteral:
		explainLiteral(sb, n.(ast.Literal), indent)
	case *ast.IntervalLiteral:
		header(sb, indent, "IntervalLiteral "+n.Unit, 1)
		Node(sb, n.Value, depth+1)

	default:
		// For unhandled types, just print the type name
		fmt.Fprintf(sb, "%s%T\n", indent, node)
	}
}

// header writes a node line, with the child count when there are children.
func header(sb *strings.Builder, indent, label string, children int) {
	if children > 0 {
		fmt.Fprintf(sb, "%s%s (children %d)\n", indent, label, children)
		return
	}
	fmt.Fprintf(sb, "%s%s\n", indent, label)
}

func explainBinary(sb *strings.Builder, label string, left, right ast.Node, indent string, depth int) {
	header(sb, indent, label, 2)
	Node(sb, left, depth+1)
	Node(sb, right, depth+1)
}

// setting writes an optional command setting as a labelled child.
func setting(sb *strings.Builder, name string, value ast.Literal, indent string, depth int) {
	header(sb, indent, "Setting "+name, 1)
	Node(sb, value, depth+1)
}

func explainRoot(sb *strings.Builder, n *ast.Root, indent string, depth int) {
	if n.Statement == nil {
		header(sb, indent, "Root", 0)
		return
	}
	Node(sb, n.Statement, depth)
}

func explainQueryStatement(sb *strings.Builder, n *ast.QueryStatement, indent string, depth int) {
	header(sb, indent, "QueryStatement", 1+len(n.Commands))
	Node(sb, n.Source, depth+1)
	for _, cmd := range n.Commands {
		Node(sb, cmd, depth+1)
	}
}
