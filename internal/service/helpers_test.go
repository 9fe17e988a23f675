package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ellisbraun/haven/internal/db"
	"github.com/ellisbraun/haven/internal/llm"
	"github.com/ellisbraun/haven/internal/repository"
	"github.com/ellisbraun/haven/internal/testutil"
)

func setupRepos(t *testing.T) (*repository.SQLiteCalendarRepo, *repository.SQLiteAssessmentRepo, db.UnitOfWork, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteCalendarRepo(database),
		repository.NewSQLiteAssessmentRepo(database),
		db.NewSQLiteUnitOfWork(database),
		database
}

// stubGenerator is an llm.Client that replays canned text per task and
// records every request it sees.
type stubGenerator struct {
	planText string
	planErr  error
	swapText string
	swapErr  error
	requests []llm.Request
}

func (g *stubGenerator) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	g.requests = append(g.requests, req)
	switch req.Task {
	case llm.TaskSwap:
		if g.swapErr != nil {
			return nil, g.swapErr
		}
		return &llm.Response{Text: g.swapText, Model: "stub"}, nil
	default:
		if g.planErr != nil {
			return nil, g.planErr
		}
		return &llm.Response{Text: g.planText, Model: "stub"}, nil
	}
}

func (g *stubGenerator) Available(context.Context) bool { return true }
