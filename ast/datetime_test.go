package ast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatetimeLiteralTime(t *testing.T) {
	tests := []struct {
		kind  string
		value string
		want  time.Time
	}{
		{"DATE", "2020-01-02", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"DATE", "2020-01-02 10:11:12", time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"TIMESTAMP", "2020-01-02 10:11:12", time.Date(2020, 1, 2, 10, 11, 12, 0, time.UTC)},
		{"TIME", "10:11:12", time.Date(0, 1, 1, 10, 11, 12, 0, time.UTC)},
		{"TIME", "10:11", time.Date(0, 1, 1, 10, 11, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.kind+" "+tt.value, func(t *testing.T) {
			lit := &DatetimeLiteral{Kind: tt.kind, Value: tt.value}
			got, err := lit.Time()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestDatetimeLiteralInvalid(t *testing.T) {
	for _, lit := range []*DatetimeLiteral{
		{Kind: "DATE", Value: ""},
		{Kind: "DATE", Value: "not a date"},
		{Kind: "TIME", Value: "noon"},
	} {
		_, err := lit.Time()
		assert.Error(t, err, "%s %q", lit.Kind, lit.Value)
	}
}
