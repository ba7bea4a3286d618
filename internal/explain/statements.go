package explain

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

func explainFieldsCommand(sb *strings.Builder, n *ast.FieldsCommand, indent string, depth int) {
	label := "FieldsCommand"
	if n.Sign != "" {
		label += " " + n.Sign
	}
	header(sb, indent, label, len(n.Fields))
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
}

func explainRenameCommand(sb *strings.Builder, n *ast.RenameCommand, indent string, depth int) {
	header(sb, indent, "RenameCommand", len(n.Clauses))
	for _, c := range n.Clauses {
		Node(sb, c, depth+1)
	}
}

func explainStatsCommand(sb *strings.Builder, n *ast.StatsCommand, indent string, depth int) {
	children := len(n.Terms)
	for _, set := range []bool{n.Partitions != nil, n.AllNum != nil, n.Delim != nil, n.By != nil, n.DedupSplitValues != nil} {
		if set {
			children++
		}
	}
	header(sb, indent, "StatsCommand", children)
	if n.Partitions != nil {
		setting(sb, "partitions", n.Partitions, indent+" ", depth+1)
	}
	if n.AllNum != nil {
		setting(sb, "allnum", n.AllNum, indent+" ", depth+1)
	}
	if n.Delim != nil {
		setting(sb, "delim", n.Delim, indent+" ", depth+1)
	}
	for _, t := range n.Terms {
		Node(sb, t, depth+1)
	}
	if n.By != nil {
		Node(sb, n.By, depth+1)
	}
	if n.DedupSplitValues != nil {
		setting(sb, "dedup_splitvalues", n.DedupSplitValues, indent+" ", depth+1)
	}
}

func explainStatsAggTerm(sb *strings.Builder, n *ast.StatsAggTerm, indent string, depth int) {
	label := "StatsAggTerm"
	if n.Alias != nil {
		label += " AS " + n.Alias.String()
	}
	header(sb, indent, label, 1)
	Node(sb, n.Func, depth+1)
}

func explainTakeAggFunctionCall(sb *strings.Builder, n *ast.TakeAggFunctionCall, indent string, depth int) {
	children := 1
	if n.Size != nil {
		children++
	}
	header(sb, indent, "TakeAggFunctionCall", children)
	Node(sb, n.Field, depth+1)
	if n.Size != nil {
		Node(sb, n.Size, depth+1)
	}
}

func explainStatsByClause(sb *strings.Builder, n *ast.StatsByClause, indent string, depth int) {
	children := len(n.Fields)
	if n.Span != nil {
		children++
	}
	header(sb, indent, "StatsByClause", children)
	if n.Span != nil {
		Node(sb, n.Span, depth+1)
	}
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
}

func explainBySpanClause(sb *strings.Builder, n *ast.BySpanClause, indent string, depth int) {
	label := "BySpanClause"
	if n.Alias != nil {
		label += " AS " + n.Alias.String()
	}
	header(sb, indent, label, 1)
	Node(sb, n.Span, depth+1)
}

func explainSpanClause(sb *strings.Builder, n *ast.SpanClause, indent string, depth int) {
	label := "SpanClause"
	if n.Unit != "" {
		label += " " + n.Unit
	}
	explainBinary(sb, label, n.Field, n.Value, indent, depth)
}

func explainDedupCommand(sb *strings.Builder, n *ast.DedupCommand, indent string, depth int) {
	children := len(n.Fields)
	for _, set := range []bool{n.Number != nil, n.KeepEmpty != nil, n.Consecutive != nil} {
		if set {
			children++
		}
	}
	header(sb, indent, "DedupCommand", children)
	if n.Number != nil {
		setting(sb, "number", n.Number, indent+" ", depth+1)
	}
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
	if n.KeepEmpty != nil {
		setting(sb, "keepempty", n.KeepEmpty, indent+" ", depth+1)
	}
	if n.Consecutive != nil {
		setting(sb, "consecutive", n.Consecutive, indent+" ", depth+1)
	}
}

func explainSortCommand(sb *strings.Builder, n *ast.SortCommand, indent string, depth int) {
	header(sb, indent, "SortCommand", len(n.Fields))
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
}

func explainSortField(sb *strings.Builder, n *ast.SortField, indent string, depth int) {
	label := "SortField"
	if n.Sign != "" {
		label += " " + n.Sign
	}
	if n.Cast != "" {
		label += " " + n.Cast
	}
	header(sb, indent, label, 1)
	Node(sb, n.Field, depth+1)
}

func explainEvalCommand(sb *strings.Builder, n *ast.EvalCommand, indent string, depth int) {
	header(sb, indent, "EvalCommand", len(n.Clauses))
	for _, c := range n.Clauses {
		Node(sb, c, depth+1)
	}
}

func explainHeadCommand(sb *strings.Builder, n *ast.HeadCommand, indent string, depth int) {
	children := 0
	for _, set := range []bool{n.Number != nil, n.From != nil} {
		if set {
			children++
		}
	}
	header(sb, indent, "HeadCommand", children)
	if n.Number != nil {
		setting(sb, "number", n.Number, indent+" ", depth+1)
	}
	if n.From != nil {
		setting(sb, "from", n.From, indent+" ", depth+1)
	}
}

func explainTopCommand(sb *strings.Builder, n *ast.TopCommand, indent string, depth int) {
	children := len(n.Fields)
	for _, set := range []bool{n.Number != nil, n.By != nil} {
		if set {
			children++
		}
	}
	header(sb, indent, "TopCommand", children)
	if n.Number != nil {
		setting(sb, "number", n.Number, indent+" ", depth+1)
	}
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
	if n.By != nil {
		Node(sb, n.By, depth+1)
	}
}

func explainRareCommand(sb *strings.Builder, n *ast.RareCommand, indent string, depth int) {
	children := len(n.Fields)
	if n.By != nil {
		children++
	}
	header(sb, indent, "RareCommand", children)
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
	if n.By != nil {
		Node(sb, n.By, depth+1)
	}
}

func explainByClause(sb *strings.Builder, n *ast.ByClause, indent string, depth int) {
	header(sb, indent, "ByClause", len(n.Fields))
	for _, f := range n.Fields {
		Node(sb, f, depth+1)
	}
}

func explainPatternsCommand(sb *strings.Builder, n *ast.PatternsCommand, indent string, depth int) {
	header(sb, indent, "PatternsCommand", len(n.Params)+1)
	for _, p := range n.Params {
		Node(sb, p, depth+1)
	}
	Node(sb, n.Source, depth+1)
}

func explainCommandArgs(sb *strings.Builder, label string, args []*ast.CommandArg, indent string, depth int) {
	header(sb, indent, label, len(args))
	for _, a := range args {
		Node(sb, a, depth+1)
	}
}
