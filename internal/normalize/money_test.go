package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{
			name:     "brazilian currency with symbol",
			raw:      "R$ 1.234,56",
			expected: 1234.56,
		},
		{
			name:     "brazilian without symbol",
			raw:      "1.234,56",
			expected: 1234.56,
		},
		{
			name:     "comma decimal only",
			raw:      "110,50",
			expected: 110.50,
		},
		{
			name:     "numeric passthrough",
			raw:      "1234.56",
			expected: 1234.56,
		},
		{
			name:     "integer passthrough",
			raw:      "220",
			expected: 220.0,
		},
		{
			name:     "negative refund",
			raw:      "-150,00",
			expected: -150.0,
		},
		{
			name:     "embedded spaces",
			raw:      "R$  2 500,00",
			expected: 2500.0,
		},
		{
			name:     "empty cell",
			raw:      "",
			expected: 0.0,
		},
		{
			name:     "whitespace only",
			raw:      "   ",
			expected: 0.0,
		},
		{
			name:     "garbage coerces to zero",
			raw:      "n/a",
			expected: 0.0,
		},
		{
			name:     "millions",
			raw:      "R$ 1.234.567,89",
			expected: 1234567.89,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Money(tt.raw), 0.001)
		})
	}
}
