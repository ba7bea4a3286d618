package parser_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/parser"
)

func parse(t *testing.T, query string, opts ...parser.Option) *ast.QueryStatement {
	t.Helper()
	root, err := parser.Parse(context.Background(), query, opts...)
	require.NoError(t, err, "query: %s", query)
	require.NotNil(t, root.Statement)
	return root.Statement
}

// command parses "source=t | <segment>" and returns the second command.
func command(t *testing.T, segment string) ast.Command {
	t.Helper()
	stmt := parse(t, "source=t | "+segment)
	require.Len(t, stmt.Commands, 1)
	return stmt.Commands[0]
}

func TestEntryCommands(t *testing.T) {
	t.Run("explicit search", func(t *testing.T) {
		search := parse(t, "search source=logs").Source.(*ast.SearchCommand)
		assert.False(t, search.Implicit)
		assert.False(t, search.FilterFirst)
		assert.Nil(t, search.Filter)
		assert.Equal(t, "source", search.From.Keyword)
		require.Len(t, search.From.Sources.Sources, 1)
		assert.Equal(t, []string{"logs"}, search.From.Sources.Sources[0].Name.Parts)
	})

	t.Run("implicit search with filter", func(t *testing.T) {
		search := parse(t, "index=logs level='error'").Source.(*ast.SearchCommand)
		assert.True(t, search.Implicit)
		assert.Equal(t, "index", search.From.Keyword)
		require.IsType(t, &ast.CompareExpr{}, search.Filter)
	})

	t.Run("filter first", func(t *testing.T) {
		search := parse(t, "search a=1 b=2 source=t").Source.(*ast.SearchCommand)
		assert.True(t, search.FilterFirst)
		and, ok := search.Filter.(*ast.LogicalAnd)
		require.True(t, ok, dump(search.Filter))
		assert.True(t, and.Implicit)
	})

	t.Run("filter first in parentheses", func(t *testing.T) {
		search := parse(t, "search (a=1 OR b=2) source=t").Source.(*ast.SearchCommand)
		assert.True(t, search.FilterFirst)
		assert.IsType(t, &ast.ParentheticLogicalExpr{}, search.Filter)
	})

	t.Run("keyword case is kept", func(t *testing.T) {
		search := parse(t, "SOURCE=t").Source.(*ast.SearchCommand)
		assert.Equal(t, "SOURCE", search.From.Keyword)
	})

	t.Run("several sources", func(t *testing.T) {
		search := parse(t, "source=a, b-*, remote:c").Source.(*ast.SearchCommand)
		sources := search.From.Sources.Sources
		require.Len(t, sources, 3)
		assert.False(t, sources[0].Pattern)
		assert.True(t, sources[1].Pattern)
		assert.Equal(t, "remote", sources[2].Name.Cluster)
		assert.Equal(t, "remote:c", sources[2].Name.String())
	})

	t.Run("table function", func(t *testing.T) {
		search := parse(t, "source=prometheus.query_range('up', step=60)").Source.(*ast.SearchCommand)
		fn := search.From.Function
		require.NotNil(t, fn)
		assert.Nil(t, search.From.Sources)
		assert.Equal(t, "prometheus.query_range", fn.Name.String())
		require.Len(t, fn.Args, 2)
		assert.Equal(t, "", fn.Args[0].Name)
		assert.Equal(t, "step", fn.Args[1].Name)
	})

	t.Run("describe", func(t *testing.T) {
		describe := parse(t, "describe logs-2021.01.*").Source.(*ast.DescribeCommand)
		require.Len(t, describe.Sources.Sources, 1)
		assert.True(t, describe.Sources.Sources[0].Pattern)
	})

	t.Run("show datasources", func(t *testing.T) {
		assert.IsType(t, &ast.ShowDataSourcesCommand{}, parse(t, "show datasources").Source)
	})
}

func TestCommands(t *testing.T) {
	t.Run("where", func(t *testing.T) {
		where := command(t, "where a = 1").(*ast.WhereCommand)
		assert.IsType(t, &ast.CompareExpr{}, where.Filter)
	})

	t.Run("fields", func(t *testing.T) {
		fields := command(t, "fields - a, b*, 'c%'").(*ast.FieldsCommand)
		assert.Equal(t, "-", fields.Sign)
		require.Len(t, fields.Fields, 3)
		assert.Equal(t, "a", fields.Fields[0].String())
		assert.Equal(t, "b*", fields.Fields[1].String())
		assert.Equal(t, "c*", fields.Fields[2].String())
	})

	t.Run("fields named like aggregations", func(t *testing.T) {
		fields := command(t, "fields count, max, avg").(*ast.FieldsCommand)
		var names []string
		for _, f := range fields.Fields {
			names = append(names, f.String())
		}
		assert.Equal(t, []string{"count", "max", "avg"}, names)
	})

	t.Run("rename", func(t *testing.T) {
		rename := command(t, "rename a as b, c* as d*").(*ast.RenameCommand)
		require.Len(t, rename.Clauses, 2)
		assert.Equal(t, "c*", rename.Clauses[1].From.String())
		assert.Equal(t, "d*", rename.Clauses[1].To.String())
	})

	t.Run("stats", func(t *testing.T) {
		stats := command(t, "stats partitions=2 count() as n, dc(host), percentile<90>(latency) by span(ts, 1M) as month, region dedup_splitvalues=true").(*ast.StatsCommand)
		require.NotNil(t, stats.Partitions)
		assert.Equal(t, int64(2), stats.Partitions.Value)
		require.Len(t, stats.Terms, 3)
		assert.IsType(t, &ast.CountAllFunctionCall{}, stats.Terms[0].Func)
		assert.Equal(t, "n", stats.Terms[0].Alias.String())
		assert.IsType(t, &ast.DistinctCountFunctionCall{}, stats.Terms[1].Func)
		pct := stats.Terms[2].Func.(*ast.PercentileAggFunctionCall)
		assert.Equal(t, int64(90), pct.Percent.Value)
		require.NotNil(t, stats.By.Span)
		assert.Equal(t, "M", stats.By.Span.Span.Unit)
		assert.Equal(t, "month", stats.By.Span.Alias.String())
		require.Len(t, stats.By.Fields, 1)
		assert.True(t, stats.DedupSplitValues.Value)
	})

	t.Run("bare count", func(t *testing.T) {
		stats := command(t, "stats count").(*ast.StatsCommand)
		fn := stats.Terms[0].Func.(*ast.CountAllFunctionCall)
		assert.Equal(t, "count", fn.Name)
	})

	t.Run("span unit case", func(t *testing.T) {
		minutes := command(t, "stats count() by span(ts, 5m)").(*ast.StatsCommand)
		months := command(t, "stats count() by span(ts, 5M)").(*ast.StatsCommand)
		assert.Equal(t, "m", minutes.By.Span.Span.Unit)
		assert.Equal(t, "M", months.By.Span.Span.Unit)
	})

	t.Run("dedup", func(t *testing.T) {
		dedup := command(t, "dedup 2 a, b consecutive=true keepempty=false").(*ast.DedupCommand)
		assert.Equal(t, int64(2), dedup.Number.Value)
		assert.Len(t, dedup.Fields, 2)
		assert.False(t, dedup.KeepEmpty.Value)
		assert.True(t, dedup.Consecutive.Value)
	})

	t.Run("sort", func(t *testing.T) {
		sort := command(t, "sort - a, num(b), +c").(*ast.SortCommand)
		require.Len(t, sort.Fields, 3)
		assert.Equal(t, "-", sort.Fields[0].Sign)
		assert.Equal(t, "num", sort.Fields[1].Cast)
		assert.Equal(t, "+", sort.Fields[2].Sign)
	})

	t.Run("eval", func(t *testing.T) {
		eval := command(t, "eval x = a + 1, y = a > 1").(*ast.EvalCommand)
		require.Len(t, eval.Clauses, 2)
		assert.IsType(t, &ast.BinaryArithmetic{}, eval.Clauses[0].Expr)
		assert.IsType(t, &ast.CompareExpr{}, eval.Clauses[1].Expr)
	})

	t.Run("head", func(t *testing.T) {
		head := command(t, "head 10 from 20").(*ast.HeadCommand)
		assert.Equal(t, int64(10), head.Number.Value)
		assert.Equal(t, int64(20), head.From.Value)

		bare := command(t, "head").(*ast.HeadCommand)
		assert.Nil(t, bare.Number)
		assert.Nil(t, bare.From)
	})

	t.Run("top", func(t *testing.T) {
		top := command(t, "top 5 a, b by c").(*ast.TopCommand)
		assert.Equal(t, int64(5), top.Number.Value)
		assert.Len(t, top.Fields, 2)
		require.NotNil(t, top.By)
		assert.Len(t, top.By.Fields, 1)
	})

	t.Run("rare", func(t *testing.T) {
		rare := command(t, "rare a").(*ast.RareCommand)
		assert.Len(t, rare.Fields, 1)
		assert.Nil(t, rare.By)
	})

	t.Run("grok", func(t *testing.T) {
		grok := command(t, "grok msg '%{IP:client}'").(*ast.GrokCommand)
		assert.IsType(t, &ast.FieldExpression{}, grok.Source)
		assert.Equal(t, "%{IP:client}", grok.Pattern.Value)
	})

	t.Run("parse", func(t *testing.T) {
		p := command(t, `parse email '.+@(?<host>.+)'`).(*ast.ParseCommand)
		assert.Equal(t, ".+@(?<host>.+)", p.Pattern.Value)
	})

	t.Run("patterns", func(t *testing.T) {
		patterns := command(t, "patterns new_field='shape' pattern='[a-z]' msg").(*ast.PatternsCommand)
		require.Len(t, patterns.Params, 2)
		assert.Equal(t, "new_field", patterns.Params[0].Key)
		assert.Equal(t, "pattern", patterns.Params[1].Key)
		assert.IsType(t, &ast.FieldExpression{}, patterns.Source)
	})

	t.Run("kmeans", func(t *testing.T) {
		kmeans := command(t, "kmeans centroids=3 distance_type='L1'").(*ast.KmeansCommand)
		require.Len(t, kmeans.Params, 2)
		assert.Equal(t, "centroids", kmeans.Params[0].Key)
		assert.IsType(t, &ast.IntegerLiteral{}, kmeans.Params[0].Value)
		assert.IsType(t, &ast.StringLiteral{}, kmeans.Params[1].Value)
	})

	t.Run("ad", func(t *testing.T) {
		ad := command(t, "ad shingle_size=8 time_decay=0.5 time_field='ts'").(*ast.AdCommand)
		require.Len(t, ad.Params, 3)
		assert.IsType(t, &ast.DecimalLiteral{}, ad.Params[1].Value)
		assert.Equal(t, "time_field", ad.Params[2].Key)
	})

	t.Run("ml", func(t *testing.T) {
		ml := command(t, "ml action='train' algorithm='rcf' time_field='ts'").(*ast.MlCommand)
		require.Len(t, ml.Args, 3)
		assert.Equal(t, "action", ml.Args[0].Key)
	})
}
