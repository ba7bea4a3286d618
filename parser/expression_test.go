package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/ppl/ast"
	"github.com/sqlc-dev/ppl/parser"
)

func filter(t *testing.T, expr string) ast.Expression {
	t.Helper()
	return command(t, "where "+expr).(*ast.WhereCommand).Filter
}

func evalExpr(t *testing.T, expr string) ast.Expression {
	t.Helper()
	eval := command(t, "eval x = "+expr).(*ast.EvalCommand)
	require.Len(t, eval.Clauses, 1)
	return eval.Clauses[0].Expr
}

func TestLogicalPrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "and binds tighter than or",
			expr: "a = 1 OR b = 2 AND c = 3",
			want: `LogicalOr (children 2)
 CompareExpr = (children 2)
  FieldExpression a
  IntegerLiteral 1
 LogicalAnd (children 2)
  CompareExpr = (children 2)
   FieldExpression b
   IntegerLiteral 2
  CompareExpr = (children 2)
   FieldExpression c
   IntegerLiteral 3
`,
		},
		{
			name: "xor binds tighter than and",
			expr: "a = 1 AND b = 2 XOR c = 3",
			want: `LogicalAnd (children 2)
 CompareExpr = (children 2)
  FieldExpression a
  IntegerLiteral 1
 LogicalXor (children 2)
  CompareExpr = (children 2)
   FieldExpression b
   IntegerLiteral 2
  CompareExpr = (children 2)
   FieldExpression c
   IntegerLiteral 3
`,
		},
		{
			name: "or is left associative",
			expr: "a = 1 OR b = 2 OR c = 3",
			want: `LogicalOr (children 2)
 LogicalOr (children 2)
  CompareExpr = (children 2)
   FieldExpression a
   IntegerLiteral 1
  CompareExpr = (children 2)
   FieldExpression b
   IntegerLiteral 2
 CompareExpr = (children 2)
  FieldExpression c
  IntegerLiteral 3
`,
		},
		{
			name: "not applies to one operand",
			expr: "NOT a = 1 AND b = 2",
			want: `LogicalAnd (children 2)
 LogicalNot (children 1)
  CompareExpr = (children 2)
   FieldExpression a
   IntegerLiteral 1
 CompareExpr = (children 2)
  FieldExpression b
  IntegerLiteral 2
`,
		},
		{
			name: "implicit and",
			expr: "a = 1 b = 2",
			want: `LogicalAnd implicit (children 2)
 CompareExpr = (children 2)
  FieldExpression a
  IntegerLiteral 1
 CompareExpr = (children 2)
  FieldExpression b
  IntegerLiteral 2
`,
		},
		{
			name: "parenthesized comparison operand",
			expr: "(a + 1) > 2",
			want: `CompareExpr > (children 2)
 ParentheticValueExpr (children 1)
  BinaryArithmetic + (children 2)
   FieldExpression a
   IntegerLiteral 1
 IntegerLiteral 2
`,
		},
		{
			name: "in list",
			expr: "a IN (1, 'x')",
			want: `InExpr (children 3)
 FieldExpression a
 IntegerLiteral 1
 StringLiteral 'x'
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Explain(filter(t, tt.expr)))
		})
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{
			name: "multiplication binds tighter",
			expr: "1 + 2 * 3",
			want: `BinaryArithmetic + (children 2)
 IntegerLiteral 1
 BinaryArithmetic * (children 2)
  IntegerLiteral 2
  IntegerLiteral 3
`,
		},
		{
			name: "subtraction is left associative",
			expr: "a - b - c",
			want: `BinaryArithmetic - (children 2)
 BinaryArithmetic - (children 2)
  FieldExpression a
  FieldExpression b
 FieldExpression c
`,
		},
		{
			name: "division is left associative",
			expr: "a / b % 2",
			want: `BinaryArithmetic % (children 2)
 BinaryArithmetic / (children 2)
  FieldExpression a
  FieldExpression b
 IntegerLiteral 2
`,
		},
		{
			name: "parentheses",
			expr: "(1 + 2) * 3",
			want: `BinaryArithmetic * (children 2)
 ParentheticValueExpr (children 1)
  BinaryArithmetic + (children 2)
   IntegerLiteral 1
   IntegerLiteral 2
 IntegerLiteral 3
`,
		},
		{
			name: "signed literal",
			expr: "-1.5 * a",
			want: `BinaryArithmetic * (children 2)
 DecimalLiteral -1.5
 FieldExpression a
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Explain(evalExpr(t, tt.expr)))
		})
	}
}

func TestFunctions(t *testing.T) {
	t.Run("condition call as predicate", func(t *testing.T) {
		call, ok := filter(t, "isnull(a)").(*ast.BooleanFunctionCall)
		require.True(t, ok)
		assert.Equal(t, "isnull", call.Name)
	})

	t.Run("condition call combined with and", func(t *testing.T) {
		and, ok := filter(t, "like(name, 'a%') AND b = 1").(*ast.LogicalAnd)
		require.True(t, ok)
		assert.IsType(t, &ast.BooleanFunctionCall{}, and.Left)
	})

	t.Run("eval function with no arguments", func(t *testing.T) {
		call, ok := evalExpr(t, "now()").(*ast.EvalFunctionCall)
		require.True(t, ok)
		assert.Equal(t, "now", call.Name)
		assert.Empty(t, call.Args)
	})

	t.Run("nested calls", func(t *testing.T) {
		call := evalExpr(t, "round(abs(a), 2)").(*ast.EvalFunctionCall)
		require.Len(t, call.Args, 2)
		assert.IsType(t, &ast.EvalFunctionCall{}, call.Args[0].Value)
	})

	t.Run("keyword used as field", func(t *testing.T) {
		field, ok := evalExpr(t, "abs + year").(*ast.BinaryArithmetic)
		require.True(t, ok)
		assert.IsType(t, &ast.FieldExpression{}, field.Left)
		assert.IsType(t, &ast.FieldExpression{}, field.Right)
	})

	t.Run("cast", func(t *testing.T) {
		cast := evalExpr(t, "cast(a AS double)").(*ast.DataTypeFunctionCall)
		assert.Equal(t, "DOUBLE", cast.Type)
	})

	t.Run("position", func(t *testing.T) {
		pos := evalExpr(t, "position('x' IN name)").(*ast.PositionFunctionCall)
		assert.IsType(t, &ast.StringLiteral{}, pos.Substr)
	})

	t.Run("extract", func(t *testing.T) {
		extract := evalExpr(t, "extract(day_hour FROM ts)").(*ast.ExtractFunctionCall)
		assert.Equal(t, "DAY_HOUR", extract.Part)
	})

	t.Run("get_format", func(t *testing.T) {
		gf := evalExpr(t, "get_format(TIMESTAMP, 'ISO')").(*ast.GetFormatFunctionCall)
		assert.Equal(t, "TIMESTAMP", gf.Type)
	})

	t.Run("timestampadd", func(t *testing.T) {
		ts := evalExpr(t, "timestampadd(MINUTE, 5, ts)").(*ast.TimestampFunctionCall)
		assert.Equal(t, "timestampadd", ts.Name)
		assert.Equal(t, "MINUTE", ts.Part)
	})

	t.Run("interval", func(t *testing.T) {
		call := evalExpr(t, "date_sub(ts, INTERVAL 2 hour)").(*ast.EvalFunctionCall)
		require.Len(t, call.Args, 2)
		interval := call.Args[1].Value.(*ast.IntervalLiteral)
		assert.Equal(t, "HOUR", interval.Unit)
	})

	t.Run("datetime literal", func(t *testing.T) {
		cmp := filter(t, "d > TIMESTAMP '2020-01-02 03:04:05'").(*ast.CompareExpr)
		lit := cmp.Right.(*ast.DatetimeLiteral)
		assert.Equal(t, "TIMESTAMP", lit.Kind)
		assert.Equal(t, "2020-01-02 03:04:05", lit.Value)
	})
}

func TestRelevanceFunctions(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		fn := filter(t, "match_phrase(msg, 'disk full', slop=2, boost=1.5)").(*ast.RelevanceFunction)
		assert.Equal(t, "match_phrase", fn.Name)
		require.Len(t, fn.Fields, 1)
		require.Len(t, fn.Args, 2)
		assert.Equal(t, "slop", fn.Args[0].Name)
		assert.Equal(t, "boost", fn.Args[1].Name)
	})

	t.Run("weighted fields", func(t *testing.T) {
		fn := filter(t, "multi_match(['title'^3, body, tags 2], 'x')").(*ast.RelevanceFunction)
		require.Len(t, fn.Fields, 3)
		assert.IsType(t, &ast.StringLiteral{}, fn.Fields[0].Field)
		assert.Equal(t, int64(3), fn.Fields[0].Weight.(*ast.IntegerLiteral).Value)
		assert.Nil(t, fn.Fields[1].Weight)
		assert.NotNil(t, fn.Fields[2].Weight)
	})

	t.Run("combined", func(t *testing.T) {
		or, ok := filter(t, "query_string(['a'], 'x') OR NOT match(b, 'y')").(*ast.LogicalOr)
		require.True(t, ok)
		assert.IsType(t, &ast.RelevanceFunction{}, or.Left)
		assert.IsType(t, &ast.LogicalNot{}, or.Right)
	})
}

func TestWildcards(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"star suffix", "a*", "a*"},
		{"star prefix", "*b", "*b"},
		{"percent marker", "a%b", "a*b"},
		{"quoted", "'a*'", "a*"},
		{"quoted percent", `"a%"`, "a*"},
		{"backticked", "`a b`", "a b"},
		{"dotted", "a.b*", "a.b*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := command(t, "fields "+tt.field).(*ast.FieldsCommand)
			require.Len(t, fields.Fields, 1)
			assert.Equal(t, tt.want, fields.Fields[0].String())
		})
	}

	quoted := command(t, "fields 'a*'").(*ast.FieldsCommand)
	bare := command(t, "fields a*").(*ast.FieldsCommand)
	assert.Equal(t, bare.Fields[0].Parts, quoted.Fields[0].Parts)
}
