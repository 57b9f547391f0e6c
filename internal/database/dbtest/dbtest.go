// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/01moynul/shop-api/internal/config"
	"github.com/01moynul/shop-api/internal/database"
)

// MemoryDSN is an in-memory sqlite database with foreign keys enforced.
const MemoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Open returns a fresh, migrated in-memory database that is closed when the
// test ends.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	db, err := database.Open(context.Background(), config.DriverSQLite, MemoryDSN)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
