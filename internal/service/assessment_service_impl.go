package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ellisbraun/haven/internal/domain"
	"github.com/ellisbraun/haven/internal/repository"
)

type assessmentService struct {
	assessments repository.AssessmentRepo
}

func NewAssessmentService(assessments repository.AssessmentRepo) AssessmentService {
	return &assessmentService{assessments: assessments}
}

func (s *assessmentService) Record(ctx context.Context, userID string, answers []int) (*domain.Assessment, error) {
	if len(answers) != len(domain.PHQ9Questions) {
		return nil, ErrInvalidAnswers
	}
	score := 0
	for _, v := range answers {
		if v < 0 || v > 3 {
			return nil, ErrInvalidAnswers
		}
		score += v
	}

	a := &domain.Assessment{
		ID:      uuid.New().String(),
		UserID:  userID,
		Score:   score,
		Answers: answers,
		TakenAt: time.Now().UTC(),
	}
	if err := s.assessments.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *assessmentService) History(ctx context.Context, userID string) ([]*domain.Assessment, error) {
	return s.assessments.ListByUser(ctx, userID)
}
