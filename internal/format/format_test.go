package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlc-dev/ppl/ast"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"host", "host"},
		{"@timestamp", "@timestamp"},
		{"a1", "a1"},
		{"count", "count"},
		{".hidden", ".hidden"},
		{"1a", "`1a`"},
		{"a b", "`a b`"},
		{"a`b", "`a``b`"},
		{"by", "`by`"},
		{"date", "`date`"},
		{"", "``"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			Ident(&sb, tt.name)
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestWildcardName(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"a*"}, "a*"},
		{[]string{"*"}, "*"},
		{[]string{"a", "b*c"}, "a.b*c"},
		{[]string{"a b*"}, "`a b*`"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		WildcardName(&sb, &ast.WildcardQualifiedName{Parts: tt.parts})
		assert.Equal(t, tt.want, sb.String())
	}
}

func TestFormat(t *testing.T) {
	root := &ast.Root{Statement: &ast.QueryStatement{
		Source: &ast.SearchCommand{
			Implicit: true,
			From: &ast.FromClause{
				Keyword: "index",
				Sources: &ast.TableSourceClause{Sources: []*ast.TableSource{
					{Name: &ast.TableQualifiedName{Cluster: "remote", Parts: []string{"logs-*"}}, Pattern: true},
				}},
			},
			Filter: &ast.LogicalAnd{
				Implicit: true,
				Left: &ast.CompareExpr{
					Left:  &ast.FieldExpression{Name: &ast.QualifiedName{Parts: []string{"a"}}},
					Op:    "=",
					Right: &ast.IntegerLiteral{Raw: "1", Value: 1},
				},
				Right: &ast.LogicalNot{Expr: &ast.BooleanFunctionCall{
					Name: "isnull",
					Args: []*ast.FunctionArg{{Value: &ast.FieldExpression{Name: &ast.QualifiedName{Parts: []string{"b"}}}}},
				}},
			},
		},
		Commands: []ast.Command{
			&ast.StatsCommand{
				Terms: []*ast.StatsAggTerm{
					{Func: &ast.CountAllFunctionCall{Name: "count"}},
					{Func: &ast.PercentileAggFunctionCall{
						Percent: &ast.IntegerLiteral{Raw: "99", Value: 99},
						Field:   &ast.QualifiedName{Parts: []string{"latency"}},
					}, Alias: &ast.WildcardQualifiedName{Parts: []string{"p99"}}},
				},
				By: &ast.StatsByClause{Span: &ast.BySpanClause{Span: &ast.SpanClause{
					Field: &ast.FieldExpression{Name: &ast.QualifiedName{Parts: []string{"ts"}}},
					Value: &ast.IntegerLiteral{Raw: "1", Value: 1},
					Unit:  "h",
				}}},
			},
			&ast.HeadCommand{},
		},
	}}

	want := "index=remote:logs-* a = 1 NOT isnull(b) | stats count(), percentile<99>(latency) as p99 by span(ts, 1h) | head"
	assert.Equal(t, want, Format(root))
	assert.Equal(t, "", Format(&ast.Root{}))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		lit  ast.Literal
		want string
	}{
		{&ast.StringLiteral{Raw: `"a"`, Value: "a"}, `"a"`},
		{&ast.DecimalLiteral{Raw: ".5", Value: 0.5}, ".5"},
		{&ast.BooleanLiteral{Value: true}, "true"},
		{&ast.DatetimeLiteral{Kind: "TIMESTAMP", Value: "2020-01-01 00:00:00"}, "TIMESTAMP '2020-01-01 00:00:00'"},
		{&ast.IntervalLiteral{Value: &ast.IntegerLiteral{Raw: "2", Value: 2}, Unit: "WEEK"}, "INTERVAL 2 WEEK"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		Literal(&sb, tt.lit)
		assert.Equal(t, tt.want, sb.String())
	}
}
