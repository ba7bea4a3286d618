package parser_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/lexer"
	"github.com/sqlc-dev/ppl/parser"
	"github.com/sqlc-dev/ppl/token"
)

// dump renders a tree for failure messages.
func dump(v any) string {
	cfg := spew.NewDefaultConfig()
	cfg.DisableMethods = true
	cfg.DisablePointerMethods = true
	cfg.DisablePointerAddresses = true
	cfg.DisableCapacities = true
	cfg.SortKeys = true
	cfg.Indent = "  "
	return cfg.Sdump(v)
}

// TestParser runs the cases in the testdata directory.
// Each subdirectory is a test case with:
//   - query.ppl: the query to parse
//   - explain.txt: the expected tree output
func TestParser(t *testing.T) {
	testdataDir := "testdata"

	entries, err := os.ReadDir(testdataDir)
	require.NoError(t, err)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		testName := entry.Name()
		testDir := filepath.Join(testdataDir, testName)

		t.Run(testName, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
			defer cancel()

			queryBytes, err := os.ReadFile(filepath.Join(testDir, "query.ppl"))
			require.NoError(t, err)
			query := strings.TrimSpace(string(queryBytes))

			root, err := parser.Parse(ctx, query)
			if err != nil {
				t.Fatalf("Parse error: %v\nQuery: %s", err, query)
			}

			_, err = ast.MarshalJSON(root)
			require.NoError(t, err)

			expected, err := os.ReadFile(filepath.Join(testDir, "explain.txt"))
			require.NoError(t, err)
			got := parser.Explain(root)
			assert.Equal(t, string(expected), got, "query: %s\n%s", query, dump(root))

			// The formatted query parses back to the same tree.
			formatted := parser.Format(root)
			again, err := parser.Parse(ctx, formatted)
			require.NoError(t, err, "formatted: %s", formatted)
			assert.Equal(t, got, parser.Explain(again), "formatted: %s", formatted)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, query := range []string{"", "   ", "\n\t"} {
		root, err := parser.Parse(context.Background(), query)
		require.NoError(t, err)
		assert.Nil(t, root.Statement)
		assert.Equal(t, "Root\n", parser.Explain(root))
	}
}

func TestParseReader(t *testing.T) {
	root, err := parser.ParseReader(context.Background(), strings.NewReader("source=t | head 1"))
	require.NoError(t, err)
	require.NotNil(t, root.Statement)
	assert.Len(t, root.Statement.Commands, 1)
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Parse(ctx, "source=t | head 1 | fields a")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPositions(t *testing.T) {
	query := "source=t\n| where a = 1"
	root, err := parser.Parse(context.Background(), query)
	require.NoError(t, err)

	where := root.Statement.Commands[0].(*ast.WhereCommand)
	assert.Equal(t, 2, where.Pos().Line)
	assert.Equal(t, 3, where.Pos().Column)
	assert.Equal(t, len(query), where.End().Offset)

	cmp := where.Filter.(*ast.CompareExpr)
	assert.Equal(t, "a = 1", query[cmp.Pos().Offset:cmp.End().Offset])
	assert.Equal(t, len(query), root.End().Offset)
}

// roundTripQueries cover every command and expression form.
var roundTripQueries = []string{
	"search source=t",
	"source=a, b-*, remote:c-2021.01.*",
	"source=t a = 1 b != 'x' OR NOT c > 2",
	"search a = 1 b = 2 source=t",
	"source=prometheus.query_range('up', 1, step=60)",
	"show datasources",
	"describe logs",
	"source=t | where a IN (1, 'b', 2.5) XOR b REGEXP '^x'",
	"source=t | where (a = 1 OR b = 2) AND c <= 3",
	"source=t | where (a + 1) * 2 >= b",
	"source=t | fields - a, b*, `c d`",
	"source=t | fields count, max, avg",
	"source=t | rename a as b, c* as d*",
	"source=t | stats partitions=2 allnum=true delim=',' count() by a dedup_splitvalues=false",
	"source=t | stats dc(a) as n, percentile<95>(b), take(c, 5), sum(d * 2)",
	"source=t | stats min(a) by span(ts, 5m), host",
	"source=t | dedup 1 a, b keepempty=false consecutive=true",
	"source=t | sort -a, +num(b), ip(c), auto(d)",
	"source=t | eval x = if(a > 1, 'big', 'small'), y = date_add(ts, INTERVAL 1 DAY)",
	"source=t | eval p = position('a' IN name), e = extract(YEAR FROM ts), f = get_format(DATE, 'USA')",
	"source=t | eval d = timestampdiff(DAY, TIMESTAMP '2020-01-01 00:00:00', ts)",
	"source=t | eval n = isnull(a), l = length(concat(a, b))",
	"source=t | head 10 from 5",
	"source=t | head",
	"source=t | top 3 a, b by c | rare a",
	"source=t | grok msg '%{IP:ip}' | parse msg '(?<host>.+)'",
	"source=t | patterns new_field='p' pattern='[0-9]' msg",
	"source=t | kmeans centroids=3 iterations=2 distance_type='COSINE'",
	"source=t | ad number_of_trees=10 time_field='ts' anomaly_rate=0.1",
	"source=t | ml action='train' algorithm='rcf'",
	"source=t | where multi_match(['a'^2, b], 'x', slop=2) OR match_phrase(c, 'y z')",
	"source=t | where like(name, 'a%') AND d = DATE '2020-01-01'",
}

func TestRoundTrip(t *testing.T) {
	for _, query := range roundTripQueries {
		t.Run(query, func(t *testing.T) {
			root, err := parser.Parse(context.Background(), query)
			require.NoError(t, err)

			first := parser.Format(root)
			again, err := parser.Parse(context.Background(), first)
			require.NoError(t, err, "formatted: %s", first)
			assert.Equal(t, first, parser.Format(again))
			assert.Equal(t, parser.Explain(root), parser.Explain(again), "formatted: %s\n%s", first, dump(again))
		})
	}
}

func TestIdempotent(t *testing.T) {
	for _, query := range roundTripQueries {
		first, err := parser.Parse(context.Background(), query)
		require.NoError(t, err, query)
		second, err := parser.Parse(context.Background(), query)
		require.NoError(t, err, query)
		assert.Equal(t, first, second, query)
	}
}

// retokenize scans s on its own and joins the token values, unquoting
// backtick names.
func retokenize(s string) string {
	var sb strings.Builder
	for _, item := range lexer.Tokenize(s) {
		switch {
		case item.Token == token.EOF:
		case item.Token == token.BQUOTA_STRING:
			sb.WriteString(item.Unquote())
		default:
			sb.WriteString(item.Value)
		}
	}
	return sb.String()
}

func TestLeafSpans(t *testing.T) {
	queries := append([]string{
		"source=t | where cafe\u0301 = 1 AND `x\u0301 y` = 'e\u0301' | eval n = -2.5",
		"source=t\n| where a.b > 10\n| fields c",
	}, roundTripQueries...)

	for _, query := range queries {
		root, err := parser.Parse(context.Background(), query)
		require.NoError(t, err, query)

		var leaves int
		ast.Inspect(root, func(n ast.Node) bool {
			if n == nil {
				return false
			}
			span := query[n.Pos().Offset:n.End().Offset]
			switch n := n.(type) {
			case *ast.FieldExpression:
				leaves++
				assert.Equal(t, n.Name.String(), retokenize(span), "query %q span %q", query, span)
			case *ast.StringLiteral:
				leaves++
				assert.Equal(t, n.Raw, span, query)
				assert.Equal(t, n.Raw, retokenize(span), query)
			case *ast.IntegerLiteral:
				leaves++
				assert.Equal(t, n.Raw, retokenize(span), "query %q span %q", query, span)
			case *ast.DecimalLiteral:
				leaves++
				assert.Equal(t, n.Raw, retokenize(span), "query %q span %q", query, span)
			}
			return true
		})
		assert.NotZero(t, leaves, query)
	}
}

func TestDecomposedInput(t *testing.T) {
	query := "source=t | where cafe\u0301 = 1"
	root, err := parser.Parse(context.Background(), query)
	require.NoError(t, err)

	cmp := root.Statement.Commands[0].(*ast.WhereCommand).Filter.(*ast.CompareExpr)
	field := cmp.Left.(*ast.FieldExpression)
	assert.Equal(t, []string{"caf\u00e9"}, field.Name.Parts)
	assert.Equal(t, "cafe\u0301", query[field.Pos().Offset:field.End().Offset])
	assert.Equal(t, "1", query[cmp.Right.Pos().Offset:cmp.Right.End().Offset])
	assert.Equal(t, len(query), root.End().Offset)
}

// BenchmarkParser benchmarks the parser on a long pipeline.
func BenchmarkParser(b *testing.B) {
	query := `
		search source=logs-2024.* status >= 500 OR match(message, 'timeout')
		| where isnotnull(host) AND (latency_ms * 1000) / 2 > 30
		| eval slow = if(latency_ms > 100, true, false), day = extract(DAY FROM ts)
		| stats count() as errors, avg(latency_ms) by span(ts, 1h), host
		| sort - errors
		| head 100
	`

	ctx := context.Background()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(ctx, query); err != nil {
			b.Fatal(err)
		}
	}
}
