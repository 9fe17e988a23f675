package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ScoresAndStores(t *testing.T) {
	_, assessRepo, _, _ := setupRepos(t)
	svc := NewAssessmentService(assessRepo)
	ctx := context.Background()

	a, err := svc.Record(ctx, "casey", []int{1, 2, 3, 2, 0, 1, 2, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 11, a.Score)
	assert.NotEmpty(t, a.ID)

	answers, err := assessRepo.LatestAnswers(ctx, "casey")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 2, 0, 1, 2, 0, 0}, answers)

	scores, err := assessRepo.LatestScores(ctx, "casey", 5)
	require.NoError(t, err)
	assert.Equal(t, []int{11}, scores)
}

func TestRecord_RejectsBadAnswers(t *testing.T) {
	_, assessRepo, _, _ := setupRepos(t)
	svc := NewAssessmentService(assessRepo)
	ctx := context.Background()

	_, err := svc.Record(ctx, "casey", []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	_, err = svc.Record(ctx, "casey", []int{1, 2, 3, 2, 0, 1, 2, 0, 4})
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	_, err = svc.Record(ctx, "casey", []int{1, 2, 3, 2, 0, 1, 2, 0, -1})
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	history, err := svc.History(ctx, "casey")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestHistory_ReturnsAll(t *testing.T) {
	_, assessRepo, _, _ := setupRepos(t)
	svc := NewAssessmentService(assessRepo)
	ctx := context.Background()

	_, err := svc.Record(ctx, "casey", []int{0, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	_, err = svc.Record(ctx, "casey", []int{3, 3, 3, 3, 3, 3, 3, 3, 3})
	require.NoError(t, err)

	history, err := svc.History(ctx, "casey")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
