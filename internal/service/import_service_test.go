package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellisbraun/haven/internal/importer"
	"github.com/ellisbraun/haven/internal/testutil"
)

func TestImportFile(t *testing.T) {
	calRepo, _, uow, _ := setupRepos(t)
	svc := NewImportService(uow)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "calendar.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"entries": [
			{"title": "Therapy", "date": "2025-03-06", "start": "15:00", "end": "16:00"},
			{"title": "Yoga", "date": "2025-03-07", "start": "8:00 AM", "end": "9:00 AM"}
		]
	}`), 0o644))

	result, err := svc.ImportFile(ctx, "casey", path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Inserted)

	entries, err := calRepo.ListByUser(ctx, "casey")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.False(t, e.IsGenerated)
	}
}

func TestImportFromSchema_ValidationFailureImportsNothing(t *testing.T) {
	calRepo, _, uow, _ := setupRepos(t)
	svc := NewImportService(uow)
	ctx := context.Background()

	_, err := svc.ImportFromSchema(ctx, "casey", &importer.ImportSchema{Entries: []importer.EntryImport{
		{Title: "Fine", Date: "2025-03-06", Start: "15:00", End: "16:00"},
		{Title: "Broken", Date: "2025-03-06", Start: "16:00", End: "15:00"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed")

	entries, listErr := calRepo.ListByUser(ctx, "casey")
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestImportFromSchema_InsertFailureRollsBack(t *testing.T) {
	calRepo, _, _, database := setupRepos(t)

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewImportService(uow)
	ctx := context.Background()

	_, err := svc.ImportFromSchema(ctx, "casey", &importer.ImportSchema{Entries: []importer.EntryImport{
		{Title: "First", Date: "2025-03-06", Start: "15:00", End: "16:00"},
		{Title: "Second", Date: "2025-03-07", Start: "15:00", End: "16:00"},
	}})
	require.ErrorIs(t, err, boom)

	entries, listErr := calRepo.ListByUser(ctx, "casey")
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}
