package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime_AcceptedPatterns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"15:30:00", "15:30:00"},
		{"15:30", "15:30:00"},
		{"3:30:00 PM", "15:30:00"},
		{"3:30 PM", "15:30:00"},
		{"3PM", "15:00:00"},
		{"3pm", "15:00:00"},
		{"09:00:00", "09:00:00"},
		{"12:00 AM", "00:00:00"},
		{"12:00 PM", "12:00:00"},
		{" 8:05 am ", "08:05:00"},
	}
	for _, tc := range cases {
		got, ok := NormalizeTime(tc.in)
		assert.True(t, ok, "input %q should parse", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeTime_Rejected(t *testing.T) {
	for _, in := range []string{"25:00", "13:30 PM", "half past nine", "", "  ", "99", "3:60"} {
		_, ok := NormalizeTime(in)
		assert.False(t, ok, "input %q should not parse", in)
	}
}

func TestNormalizeTime_RoundTripStable(t *testing.T) {
	// normalize(normalize(x)) == normalize(x) for every accepted input.
	for _, in := range []string{"15:30:00", "15:30", "3:30 PM", "3PM"} {
		first, ok := NormalizeTime(in)
		assert.True(t, ok)
		second, ok := NormalizeTime(first)
		assert.True(t, ok)
		assert.Equal(t, first, second)
	}
}
