package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemAreas_TopThreeMostAffectedFirst(t *testing.T) {
	// Sleep problems (3), Feeling tired (3), Feeling down (2), Appetite (2):
	// four candidates above 1, so only the top three survive.
	answers := []int{0, 2, 3, 3, 2, 0, 1, 0, 0}
	areas := ProblemAreas(answers)
	assert.Equal(t, []string{"Sleep problems", "Feeling tired", "Feeling down/depressed"}, areas)
}

func TestProblemAreas_TiesKeepQuestionOrder(t *testing.T) {
	answers := []int{2, 2, 2, 0, 0, 0, 0, 0, 0}
	areas := ProblemAreas(answers)
	assert.Equal(t, []string{
		"Little interest or pleasure",
		"Feeling down/depressed",
		"Sleep problems",
	}, areas)
}

func TestProblemAreas_IgnoresLowAnswers(t *testing.T) {
	answers := []int{1, 1, 1, 1, 1, 1, 1, 1, 1}
	assert.Empty(t, ProblemAreas(answers))
}

func TestProblemAreas_ShortAnswerSlice(t *testing.T) {
	assert.Equal(t, []string{"Feeling down/depressed"}, ProblemAreas([]int{0, 3}))
	assert.Empty(t, ProblemAreas(nil))
}
