// Package format renders a PPL AST back to query text.
package format

import (
	"strings"

	"github.com/sqlc-dev/ppl/ast"
)

// Format returns the PPL text of a parsed query. Parsing the result yields
// the same tree.
func Format(root *ast.Root) string {
	if root == nil || root.Statement == nil {
		return ""
	}
	var sb strings.Builder
	Statement(&sb, root.Statement)
	return sb.String()
}

// Statement formats a query statement.
func Statement(sb *strings.Builder, stmt *ast.QueryStatement) {
	Command(sb, stmt.Source)
	for _, cmd := range stmt.Commands {
		sb.WriteString(" | ")
		Command(sb, cmd)
	}
}

// Command formats a single pipe segment.
func Command(sb *strings.Builder, cmd ast.Command) {
	switch c := cmd.(type) {
	case *ast.SearchCommand:
		formatSearchCommand(sb, c)
	case *ast.DescribeCommand:
		sb.WriteString("describe ")
		formatTableSources(sb, c.Sources)
	case *ast.ShowDataSourcesCommand:
		sb.WriteString("show datasources")
	case *ast.WhereCommand:
		sb.WriteString("where ")
		Expression(sb, c.Filter)
	case *ast.FieldsCommand:
		sb.WriteString("fields ")
		if c.Sign != "" {
			sb.WriteString(c.Sign)
			sb.WriteString(" ")
		}
		formatWildcardList(sb, c.Fields)
	case *ast.RenameCommand:
		formatRenameCommand(sb, c)
	case *ast.StatsCommand:
		formatStatsCommand(sb, c)
	case *ast.DedupCommand:
		formatDedupCommand(sb, c)
	case *ast.SortCommand:
		formatSortCommand(sb, c)
	case *ast.EvalCommand:
		formatEvalCommand(sb, c)
	case *ast.HeadCommand:
		sb.WriteString("head")
		if c.Number != nil {
			sb.WriteString(" ")
			Literal(sb, c.Number)
		}
		if c.From != nil {
			sb.WriteString(" from ")
			Literal(sb, c.From)
		}
	case *ast.TopCommand:
		sb.WriteString("top ")
		if c.Number != nil {
			Literal(sb, c.Number)
			sb.WriteString(" ")
		}
		formatFieldList(sb, c.Fields)
		formatByClause(sb, c.By)
	case *ast.RareCommand:
		sb.WriteString("rare ")
		formatFieldList(sb, c.Fields)
		formatByClause(sb, c.By)
	case *ast.GrokCommand:
		sb.WriteString("grok ")
		Expression(sb, c.Source)
		sb.WriteString(" ")
		Literal(sb, c.Pattern)
	case *ast.ParseCommand:
		sb.WriteString("parse ")
		Expression(sb, c.Source)
		sb.WriteString(" ")
		Literal(sb, c.Pattern)
	case *ast.PatternsCommand:
		sb.WriteString("patterns ")
		for _, p := range c.Params {
			sb.WriteString(p.Key)
			sb.WriteString("=")
			Literal(sb, p.Value)
			sb.WriteString(" ")
		}
		Expression(sb, c.Source)
	case *ast.KmeansCommand:
		formatCommandArgs(sb, "kmeans", c.Params)
	case *ast.AdCommand:
		formatCommandArgs(sb, "ad", c.Params)
	case *ast.MlCommand:
		formatCommandArgs(sb, "ml", c.Args)
	}
}

func formatSearchCommand(sb *strings.Builder, c *ast.SearchCommand) {
	if !c.Implicit {
		sb.WriteString("search ")
	}
	if c.FilterFirst {
		Expression(sb, c.Filter)
		sb.WriteString(" ")
		formatFromClause(sb, c.From)
		return
	}
	formatFromClause(sb, c.From)
	if c.Filter != nil {
		sb.WriteString(" ")
		Expression(sb, c.Filter)
	}
}

func formatFromClause(sb *strings.Builder, from *ast.FromClause) {
	sb.WriteString(from.Keyword)
	sb.WriteString("=")
	if from.Function != nil {
		QualifiedName(sb, from.Function.Name)
		formatArgs(sb, from.Function.Args)
		return
	}
	formatTableSources(sb, from.Sources)
}

func formatTableSources(sb *strings.Builder, clause *ast.TableSourceClause) {
	for i, s := range clause.Sources {
		if i > 0 {
			sb.WriteString(", ")
		}
		if s.Name.Cluster != "" {
			sb.WriteString(s.Name.Cluster)
			sb.WriteString(":")
		}
		for j, part := range s.Name.Parts {
			if j > 0 {
				sb.WriteString(".")
			}
			if s.Pattern {
				sb.WriteString(part)
			} else {
				Ident(sb, part)
			}
		}
	}
}

func formatRenameCommand(sb *strings.Builder, c *ast.RenameCommand) {
	sb.WriteString("rename ")
	for i, cl := range c.Clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		WildcardName(sb, cl.From)
		sb.WriteString(" as ")
		WildcardName(sb, cl.To)
	}
}

func formatStatsCommand(sb *strings.Builder, c *ast.StatsCommand) {
	sb.WriteString("stats ")
	if c.Partitions != nil {
		sb.WriteString("partitions=")
		Literal(sb, c.Partitions)
		sb.WriteString(" ")
	}
	if c.AllNum != nil {
		sb.WriteString("allnum=")
		Literal(sb, c.AllNum)
		sb.WriteString(" ")
	}
	if c.Delim != nil {
		sb.WriteString("delim=")
		Literal(sb, c.Delim)
		sb.WriteString(" ")
	}
	for i, t := range c.Terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		StatsFunction(sb, t.Func)
		if t.Alias != nil {
			sb.WriteString(" as ")
			WildcardName(sb, t.Alias)
		}
	}
	if c.By != nil {
		sb.WriteString(" by ")
		if c.By.Span != nil {
			formatSpan(sb, c.By.Span.Span)
			if c.By.Span.Alias != nil {
				sb.WriteString(" as ")
				QualifiedName(sb, c.By.Span.Alias)
			}
			if len(c.By.Fields) > 0 {
				sb.WriteString(", ")
			}
		}
		formatFieldList(sb, c.By.Fields)
	}
	if c.DedupSplitValues != nil {
		sb.WriteString(" dedup_splitvalues=")
		Literal(sb, c.DedupSplitValues)
	}
}

func formatSpan(sb *strings.Builder, span *ast.SpanClause) {
	sb.WriteString("span(")
	Expression(sb, span.Field)
	sb.WriteString(", ")
	Literal(sb, span.Value)
	sb.WriteString(span.Unit)
	sb.WriteString(")")
}

// StatsFunction formats an aggregation call.
func StatsFunction(sb *strings.Builder, fn ast.StatsFunction) {
	switch f := fn.(type) {
	case *ast.CountAllFunctionCall:
		sb.WriteString(f.Name)
		sb.WriteString("()")
	case *ast.StatsFunctionCall:
		sb.WriteString(f.Name)
		sb.WriteString("(")
		Expression(sb, f.Arg)
		sb.WriteString(")")
	case *ast.DistinctCountFunctionCall:
		sb.WriteString(f.Name)
		sb.WriteString("(")
		Expression(sb, f.Arg)
		sb.WriteString(")")
	case *ast.PercentileAggFunctionCall:
		sb.WriteString("percentile<")
		Literal(sb, f.Percent)
		sb.WriteString(">(")
		QualifiedName(sb, f.Field)
		sb.WriteString(")")
	case *ast.TakeAggFunctionCall:
		sb.WriteString("take(")
		QualifiedName(sb, f.Field)
		if f.Size != nil {
			sb.WriteString(", ")
			Literal(sb, f.Size)
		}
		sb.WriteString(")")
	}
}

func formatDedupCommand(sb *strings.Builder, c *ast.DedupCommand) {
	sb.WriteString("dedup ")
	if c.Number != nil {
		Literal(sb, c.Number)
		sb.WriteString(" ")
	}
	formatFieldList(sb, c.Fields)
	if c.KeepEmpty != nil {
		sb.WriteString(" keepempty=")
		Literal(sb, c.KeepEmpty)
	}
	if c.Consecutive != nil {
		sb.WriteString(" consecutive=")
		Literal(sb, c.Consecutive)
	}
}

func formatSortCommand(sb *strings.Builder, c *ast.SortCommand) {
	sb.WriteString("sort ")
	for i, f := range c.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Sign)
		if f.Cast != "" {
			sb.WriteString(f.Cast)
			sb.WriteString("(")
			Expression(sb, f.Field)
			sb.WriteString(")")
			continue
		}
		Expression(sb, f.Field)
	}
}

func formatEvalCommand(sb *strings.Builder, c *ast.EvalCommand) {
	sb.WriteString("eval ")
	for i, cl := range c.Clauses {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, cl.Field)
		sb.WriteString(" = ")
		Expression(sb, cl.Expr)
	}
}

func formatByClause(sb *strings.Builder, by *ast.ByClause) {
	if by == nil {
		return
	}
	sb.WriteString(" by ")
	formatFieldList(sb, by.Fields)
}

func formatCommandArgs(sb *strings.Builder, name string, args []*ast.CommandArg) {
	sb.WriteString(name)
	for _, a := range args {
		sb.WriteString(" ")
		Ident(sb, a.Key)
		sb.WriteString("=")
		Literal(sb, a.Value)
	}
}

func formatFieldList(sb *strings.Builder, fields []*ast.FieldExpression) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		Expression(sb, f)
	}
}

func formatWildcardList(sb *strings.Builder, fields []*ast.WildcardQualifiedName) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		WildcardName(sb, f)
	}
}
