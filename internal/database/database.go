package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/shop-api/internal/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Open creates the process-wide connection pool for driver/dsn, verifies it
// and applies the bootstrap schema. The caller owns the handle and closes it
// on shutdown.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	// 1. Open a new connection pool.
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	// 2. Configure the connection pool settings.
	switch driver {
	case config.DriverSQLite:
		// One connection: sqlite has a single writer, and an in-memory
		// database lives only as long as its connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	// 3. Ping the database to verify the connection.
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	// 4. Make sure the tables exist.
	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Str("driver", driver).Msg("database connection pool established")
	return db, nil
}

// Migrate runs the embedded CREATE TABLE IF NOT EXISTS script for driver.
// Statements run one at a time so the mysql DSN needs no multiStatements flag.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	script, err := schemaFS.ReadFile("schema/" + driver + ".sql")
	if err != nil {
		return fmt.Errorf("no schema for driver %q: %w", driver, err)
	}

	for _, stmt := range strings.Split(string(script), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
