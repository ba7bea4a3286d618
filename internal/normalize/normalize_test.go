package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"search source=logs", "SEARCH SOURCE = logs"},
		{"source = logs|where a<>1", "SOURCE = logs | WHERE a != 1"},
		{"source=t | eval x='It''s'", "SOURCE = t | EVAL x = 'It''s'"},
		{"source=t | stats COUNT() by host", "SOURCE = t | STATS COUNT ( ) BY host"},
		{"source=t | fields count, max", "SOURCE = t | FIELDS count , max"},
		{"source=t | where span = 1 | sort str(day)", "SOURCE = t | WHERE span = 1 | SORT STR ( day )"},
		{"source=t | stats avg(hour) by span(ts, 1h)", "SOURCE = t | STATS AVG ( hour ) BY SPAN ( ts , 1 H )"},
		{"source=t | where", "SOURCE = t | WHERE"},
		{"source=t | fields count |", "SOURCE = t | FIELDS COUNT |"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Query(tt.input))
		})
	}
}

func TestQueryKeepsFieldNamesDistinct(t *testing.T) {
	assert.NotEqual(t, Query("source=t | fields count"), Query("source=t | fields COUNT"))
	assert.Equal(t, Query("source=t | WHERE a = 1"), Query("SOURCE = t | where a=1"))
}
