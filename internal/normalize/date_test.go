package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "brazilian display format",
			raw:      "25/03/2024",
			expected: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "timestamp format",
			raw:      "2024-03-25 00:00:00",
			expected: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "serial two is first day of 1900",
			raw:      "2",
			expected: time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "serial with fractional day truncates",
			raw:      "45376.75",
			expected: time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "legacy year remaps to current year",
			raw:      "15/06/1901",
			expected: time.Date(time.Now().Year(), time.June, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Date(tt.raw)
			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "expected %v, got %v", tt.expected, *got)
		})
	}
}

func TestDateUnparsable(t *testing.T) {
	assert.Nil(t, Date(""))
	assert.Nil(t, Date("   "))
	assert.Nil(t, Date("not a date"))
	assert.Nil(t, Date("31/13/2024"))
}

func TestMonthLabel(t *testing.T) {
	d := time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "03/2024", MonthLabel(&d))
	assert.Equal(t, NoMonthLabel, MonthLabel(nil))
}
