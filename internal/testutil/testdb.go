package testutil

import (
	"database/sql"
	"testing"

	"github.com/ellisbraun/haven/internal/db"
)

// NewTestDB returns a migrated in-memory SQLite database that closes with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
