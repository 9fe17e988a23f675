package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityForScore_Bands(t *testing.T) {
	cases := []struct {
		score int
		want  Severity
	}{
		{0, SeverityMinimal},
		{4, SeverityMinimal},
		{5, SeverityMild},
		{9, SeverityMild},
		{10, SeverityModerate},
		{14, SeverityModerate},
		{15, SeverityModeratelySevere},
		{16, SeverityModeratelySevere},
		{19, SeverityModeratelySevere},
		{20, SeveritySevere},
		{27, SeveritySevere},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SeverityForScore(tc.score), "score=%d", tc.score)
	}
}

func TestTrendFromScores(t *testing.T) {
	prev := 18
	assert.Equal(t, TrendFirstAssessment, TrendFromScores(12, nil))
	assert.Equal(t, TrendImproving, TrendFromScores(12, &prev))
	assert.Equal(t, TrendWorsening, TrendFromScores(21, &prev))
	assert.Equal(t, TrendStable, TrendFromScores(18, &prev))
}

func TestWeekdayIndex_MondayFirst(t *testing.T) {
	for i, w := range Weekdays {
		idx, ok := w.Index()
		assert.True(t, ok)
		assert.Equal(t, i, idx, "weekday=%s", w)
	}
}

func TestParseWeekday(t *testing.T) {
	w, ok := ParseWeekday("Thursday")
	assert.True(t, ok)
	assert.Equal(t, Thursday, w)

	_, ok = ParseWeekday("thursday")
	assert.False(t, ok)
	_, ok = ParseWeekday("Someday")
	assert.False(t, ok)
	_, ok = ParseWeekday("")
	assert.False(t, ok)
}
