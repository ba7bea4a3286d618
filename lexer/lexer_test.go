package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlc-dev/ppl/token"
)

func kinds(items []Item) []token.Token {
	out := make([]token.Token, 0, len(items))
	for _, it := range items {
		out = append(out, it.Token)
	}
	return out
}

func values(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it.Token == token.EOF {
			continue
		}
		out = append(out, it.Value)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Token
	}{
		{
			name:  "simple pipeline",
			input: "search source=logs | where status=500",
			want: []token.Token{
				token.SEARCH, token.SOURCE, token.EQUAL, token.ID, token.PIPE,
				token.WHERE, token.ID, token.EQUAL, token.INTEGER_LITERAL, token.EOF,
			},
		},
		{
			name:  "keywords are case insensitive",
			input: "Stats COUNT() By host",
			want: []token.Token{
				token.STATS, token.COUNT, token.LT_PRTHS, token.RT_PRTHS,
				token.BY, token.ID, token.EOF,
			},
		},
		{
			name:  "comparison operators",
			input: "x1 != x2 <> x3 <= x4 >= x5 < x6 > x7 = x8",
			want: []token.Token{
				token.ID, token.NOT_EQUAL, token.ID, token.NOT_EQUAL, token.ID,
				token.NOT_GREATER, token.ID, token.NOT_LESS, token.ID, token.LESS,
				token.ID, token.GREATER, token.ID, token.EQUAL, token.ID, token.EOF,
			},
		},
		{
			name:  "arithmetic outside table sources",
			input: "aa-bb-cc*2/dd%3",
			want: []token.Token{
				token.ID, token.MINUS, token.ID, token.MINUS, token.ID, token.STAR,
				token.INTEGER_LITERAL, token.DIVIDE, token.ID, token.MODULE,
				token.INTEGER_LITERAL, token.EOF,
			},
		},
		{
			name:  "numbers",
			input: "1 1.5 .5 10h",
			want: []token.Token{
				token.INTEGER_LITERAL, token.DECIMAL_LITERAL, token.DECIMAL_LITERAL,
				token.INTEGER_LITERAL, token.H, token.EOF,
			},
		},
		{
			name:  "strings",
			input: `"a" 'b' ` + "`c`",
			want: []token.Token{
				token.DQUOTA_STRING, token.SQUOTA_STRING, token.BQUOTA_STRING, token.EOF,
			},
		},
		{
			name:  "unterminated quote",
			input: `where a = 'oops`,
			want: []token.Token{
				token.WHERE, token.ID, token.EQUAL, token.SINGLE_QUOTE, token.ID, token.EOF,
			},
		},
		{
			name:  "unrecognized character",
			input: "a # b",
			want:  []token.Token{token.ID, token.ERROR_RECOGNITION, token.ID, token.EOF},
		},
		{
			name:  "punctuation",
			input: "( ) [ ] { } : ~ & ^ !",
			want: []token.Token{
				token.LT_PRTHS, token.RT_PRTHS, token.LT_SQR_PRTHS, token.RT_SQR_PRTHS,
				token.LT_CURLY, token.RT_CURLY, token.COLON, token.BIT_NOT_OP,
				token.BIT_AND_OP, token.BIT_XOR_OP, token.EXCLAMATION_SYMBOL, token.EOF,
			},
		},
		{
			name:  "at sign identifiers",
			input: "@timestamp",
			want:  []token.Token{token.ID, token.EOF},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(Tokenize(tt.input)))
		})
	}
}

func TestTableSources(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   []token.Token
		values []string
	}{
		{
			name:   "date suffix",
			input:  "source=logs-2021.01.11",
			want:   []token.Token{token.SOURCE, token.EQUAL, token.ID_DATE_SUFFIX, token.EOF},
			values: []string{"source", "=", "logs-2021.01.11"},
		},
		{
			name:   "wildcard index",
			input:  "search index = logs-*",
			want:   []token.Token{token.SEARCH, token.INDEX, token.EQUAL, token.ID_DATE_SUFFIX, token.EOF},
			values: []string{"search", "index", "=", "logs-*"},
		},
		{
			name:  "list of sources",
			input: "source=a-1, b*, web",
			want: []token.Token{
				token.SOURCE, token.EQUAL, token.ID_DATE_SUFFIX, token.COMMA,
				token.ID_DATE_SUFFIX, token.COMMA, token.ID, token.EOF,
			},
			values: []string{"source", "=", "a-1", ",", "b*", ",", "web"},
		},
		{
			name:  "cluster prefix",
			input: "source=remote:logs-*",
			want: []token.Token{
				token.SOURCE, token.EQUAL, token.CLUSTER, token.ID_DATE_SUFFIX, token.EOF,
			},
			values: []string{"source", "=", "remote:", "logs-*"},
		},
		{
			name:   "describe",
			input:  "describe my-index",
			want:   []token.Token{token.DESCRIBE, token.ID_DATE_SUFFIX, token.EOF},
			values: []string{"describe", "my-index"},
		},
		{
			name:  "qualified source",
			input: "source=db.tbl-1",
			want: []token.Token{
				token.SOURCE, token.EQUAL, token.ID, token.DOT, token.ID_DATE_SUFFIX, token.EOF,
			},
			values: []string{"source", "=", "db", ".", "tbl-1"},
		},
		{
			name:  "mode ends after the source",
			input: "source=t a-b=1",
			want: []token.Token{
				token.SOURCE, token.EQUAL, token.ID, token.ID, token.MINUS, token.ID,
				token.EQUAL, token.INTEGER_LITERAL, token.EOF,
			},
			values: []string{"source", "=", "t", "a", "-", "b", "=", "1"},
		},
		{
			name:  "later segments are not sources",
			input: "source=t | where source=a-b",
			want: []token.Token{
				token.SOURCE, token.EQUAL, token.ID, token.PIPE, token.WHERE,
				token.SOURCE, token.EQUAL, token.ID, token.MINUS, token.ID, token.EOF,
			},
			values: []string{"source", "=", "t", "|", "where", "source", "=", "a", "-", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := Tokenize(tt.input)
			assert.Equal(t, tt.want, kinds(items))
			assert.Equal(t, tt.values, values(items))
		})
	}
}

func TestPositions(t *testing.T) {
	items := Tokenize("search source=t\n| where a = 1")
	require.Len(t, items, 10)

	assert.Equal(t, token.Position{Offset: 0, Line: 1, Column: 1}, items[0].Pos)
	assert.Equal(t, token.Position{Offset: 6, Line: 1, Column: 7}, items[0].End)

	pipe := items[4]
	assert.Equal(t, token.PIPE, pipe.Token)
	assert.Equal(t, token.Position{Offset: 16, Line: 2, Column: 1}, pipe.Pos)

	one := items[8]
	assert.Equal(t, "1", one.Value)
	assert.Equal(t, token.Position{Offset: 28, Line: 2, Column: 13}, one.Pos)

	eof := items[9]
	assert.Equal(t, token.EOF, eof.Token)
	assert.Equal(t, 29, eof.Pos.Offset)
}

func TestStringValues(t *testing.T) {
	tests := []struct {
		input string
		raw   string
		want  string
	}{
		{`'hello'`, `'hello'`, "hello"},
		{`"it's"`, `"it's"`, "it's"},
		{`'it''s'`, `'it''s'`, "it's"},
		{`'it\'s'`, `'it\'s'`, "it's"},
		{`'\d+'`, `'\d+'`, `\d+`},
		{"`a b`", "`a b`", "a b"},
	}
	for _, tt := range tests {
		items := Tokenize(tt.input)
		require.Len(t, items, 2, tt.input)
		assert.True(t, items[0].Quoted)
		assert.Equal(t, tt.raw, items[0].Value)
		assert.Equal(t, tt.want, items[0].Unquote())
	}
}

func TestNormalization(t *testing.T) {
	composed := Tokenize("caf\u00e9")
	decomposed := Tokenize("cafe\u0301")
	require.Len(t, composed, 2)
	require.Len(t, decomposed, 2)
	assert.Equal(t, token.ID, decomposed[0].Token)
	assert.Equal(t, composed[0].Value, decomposed[0].Value)

	// Offsets stay on the text as given.
	input := "cafe\u0301 = 'e\u0301'"
	items := Tokenize(input)
	require.Len(t, items, 4)
	assert.Equal(t, 0, items[0].Pos.Offset)
	assert.Equal(t, 6, items[0].End.Offset)
	assert.Equal(t, "=", input[items[1].Pos.Offset:items[1].End.Offset])
	assert.Equal(t, "'e\u0301'", items[2].Value)
	assert.Equal(t, "\u00e9", items[2].Unquote())
	assert.Equal(t, len(input), items[3].Pos.Offset)
}

func TestNewReader(t *testing.T) {
	l, err := NewReader(strings.NewReader("head 5"))
	require.NoError(t, err)
	assert.Equal(t, token.HEAD, l.NextToken().Token)
	assert.Equal(t, token.INTEGER_LITERAL, l.NextToken().Token)
	assert.Equal(t, token.EOF, l.NextToken().Token)
	assert.Equal(t, token.EOF, l.NextToken().Token)
}
