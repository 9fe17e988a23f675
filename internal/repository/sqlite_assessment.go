package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/domain"
)

// SQLiteAssessmentRepo implements AssessmentRepo over a SQLite database.
type SQLiteAssessmentRepo struct {
	db db.DBTX
}

func NewSQLiteAssessmentRepo(dbtx db.DBTX) *SQLiteAssessmentRepo {
	return &SQLiteAssessmentRepo{db: dbtx}
}

func (r *SQLiteAssessmentRepo) Insert(ctx context.Context, a *domain.Assessment) error {
	query := `INSERT INTO assessments (id, user_id, score, answers, taken_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Score,
		encodeAnswers(a.Answers),
		a.TakenAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}
	return nil
}

func (r *SQLiteAssessmentRepo) LatestScores(ctx context.Context, userID string, n int) ([]int, error) {
	query := `SELECT score FROM assessments WHERE user_id = ? ORDER BY taken_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, n)
	if err != nil {
		return nil, fmt.Errorf("listing latest scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var s int
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning score: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scores: %w", err)
	}
	return scores, nil
}

func (r *SQLiteAssessmentRepo) LatestAnswers(ctx context.Context, userID string) ([]int, error) {
	query := `SELECT answers FROM assessments WHERE user_id = ? AND answers != '' ORDER BY taken_at DESC LIMIT 1`
	var encoded string
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&encoded); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("assessment answers: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading latest answers: %w", err)
	}
	return decodeAnswers(encoded), nil
}

func (r *SQLiteAssessmentRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Assessment, error) {
	query := `SELECT id, user_id, score, answers, taken_at FROM assessments
		WHERE user_id = ? ORDER BY taken_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		var answersStr, takenAtStr string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Score, &answersStr, &takenAtStr); err != nil {
			return nil, fmt.Errorf("scanning assessment row: %w", err)
		}
		a.Answers = decodeAnswers(answersStr)
		a.TakenAt, err = time.Parse(time.RFC3339, takenAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing taken_at: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}
	return out, nil
}
