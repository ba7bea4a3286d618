package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order, visiting children in source
// order.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Root:
		if n.Statement != nil {
			Walk(v, n.Statement)
		}
	case *QueryStatement:
		if n.Source != nil {
			Walk(v, n.Source)
		}
		for _, c := range n.Commands {
			Walk(v, c)
		}

	// Entry commands
	case *SearchCommand:
		if n.FilterFirst && n.Filter != nil {
			Walk(v, n.Filter)
		}
		if n.From != nil {
			Walk(v, n.From)
		}
		if !n.FilterFirst && n.Filter != nil {
			Walk(v, n.Filter)
		}
	case *DescribeCommand:
		Walk(v, n.Sources)
	case *ShowDataSourcesCommand:
		// nothing to do

	// Pipeline commands
	case *WhereCommand:
		Walk(v, n.Filter)
	case *FieldsCommand:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *RenameCommand:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	case *StatsCommand:
		walkOptional(v, n.Partitions)
		walkOptional(v, n.AllNum)
		walkOptional(v, n.Delim)
		for _, t := range n.Terms {
			Walk(v, t)
		}
		if n.By != nil {
			Walk(v, n.By)
		}
		walkOptional(v, n.DedupSplitValues)
	case *DedupCommand:
		walkOptional(v, n.Number)
		for _, f := range n.Fields {
			Walk(v, f)
		}
		walkOptional(v, n.KeepEmpty)
		walkOptional(v, n.Consecutive)
	case *SortCommand:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *EvalCommand:
		for _, c := range n.Clauses {
			Walk(v, c)
		}
	case *HeadCommand:
		walkOptional(v, n.Number)
		walkOptional(v, n.From)
	case *TopCommand:
		walkOptional(v, n.Number)
		for _, f := range n.Fields {
			Walk(v, f)
		}
		if n.By != nil {
			Walk(v, n.By)
		}
	case *RareCommand:
		for _, f := range n.Fields {
			Walk(v, f)
		}
		if n.By != nil {
			Walk(v, n.By)
		}
	case *GrokCommand:
		Walk(v, n.Source)
		Walk(v, n.Pattern)
	case *ParseCommand:
		Walk(v, n.Source)
		Walk(v, n.Pattern)
	case *PatternsCommand:
		for _, p := range n.Params {
			Walk(v, p)
		}
		Walk(v, n.Source)
	case *KmeansCommand:
		for _, p := range n.Params {
			Walk(v, p)
		}
	case *AdCommand:
		for _, p := range n.Params {
			Walk(v, p)
		}
	case *MlCommand:
		for _, a := range n.Args {
			Walk(v, a)
		}

	// Clauses
	case *FromClause:
		if n.Sources != nil {
			Walk(v, n.Sources)
		}
		if n.Function != nil {
			Walk(v, n.Function)
		}
	case *TableSourceClause:
		for _, s := range n.Sources {
			Walk(v, s)
		}
	case *TableSource:
		Walk(v, n.Name)
	case *TableFunction:
		Walk(v, n.Name)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *RenameClause:
		Walk(v, n.From)
		Walk(v, n.To)
	case *ByClause:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *StatsByClause:
		if n.Span != nil {
			Walk(v, n.Span)
		}
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *BySpanClause:
		Walk(v, n.Span)
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
	case *SpanClause:
		Walk(v, n.Field)
		Walk(v, n.Value)
	case *SortField:
		Walk(v, n.Field)
	case *EvalClause:
		Walk(v, n.Field)
		Walk(v, n.Expr)
	case *StatsAggTerm:
		Walk(v, n.Func)
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
	case *PatternsParameter:
		Walk(v, n.Value)
	case *CommandArg:
		Walk(v, n.Value)

	// Stats functions
	case *StatsFunctionCall:
		Walk(v, n.Arg)
	case *CountAllFunctionCall:
		// nothing to do
	case *DistinctCountFunctionCall:
		Walk(v, n.Arg)
	case *PercentileAggFunctionCall:
		Walk(v, n.Percent)
		Walk(v, n.Field)
	case *TakeAggFunctionCall:
		Walk(v, n.Field)
		walkOptional(v, n.Size)

	// Expressions
	case *LogicalOr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalAnd:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalXor:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *LogicalNot:
		Walk(v, n.Expr)
	case *ParentheticLogicalExpr:
		Walk(v, n.Expr)
	case *CompareExpr:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *InExpr:
		Walk(v, n.Value)
		for _, l := range n.List {
			Walk(v, l)
		}
	case *BinaryArithmetic:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *ParentheticValueExpr:
		Walk(v, n.Expr)
	case *FieldExpression:
		Walk(v, n.Name)
	case *EvalFunctionCall:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *BooleanFunctionCall:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *DataTypeFunctionCall:
		Walk(v, n.Expr)
	case *PositionFunctionCall:
		Walk(v, n.Substr)
		Walk(v, n.Str)
	case *ExtractFunctionCall:
		Walk(v, n.Arg)
	case *GetFormatFunctionCall:
		Walk(v, n.Arg)
	case *TimestampFunctionCall:
		Walk(v, n.First)
		Walk(v, n.Second)
	case *RelevanceFunction:
		for _, f := range n.Fields {
			Walk(v, f)
		}
		Walk(v, n.Query)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *RelevanceFieldAndWeight:
		Walk(v, n.Field)
		if n.Weight != nil {
			Walk(v, n.Weight)
		}
	case *FunctionArg:
		Walk(v, n.Value)
	case *IntervalLiteral:
		Walk(v, n.Value)

	// Leaves
	case *QualifiedName, *TableQualifiedName, *WildcardQualifiedName,
		*StringLiteral, *IntegerLiteral, *DecimalLiteral, *BooleanLiteral,
		*DatetimeLiteral:
		// nothing to do

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

// walkOptional visits n unless it is a nil pointer.
func walkOptional[T interface {
	Node
	comparable
}](v Visitor, n T) {
	var zero T
	if n != zero {
		Walk(v, n)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order: It starts by calling
// f(node); node must not be nil. If f returns true, Inspect invokes f
// recursively for each of the non-nil children of node, followed by a
// call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
