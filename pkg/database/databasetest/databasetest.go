// Package databasetest opens throwaway SQLite databases with the full schema
// applied, for tests of packages that talk to the store.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"mesa-pos/pkg/database"
	"mesa-pos/pkg/logger"
)

// Open returns a migrated SQLite database living in t.TempDir().
func Open(t testing.TB) *database.DB {
	t.Helper()

	cfg := database.DefaultConfig()
	cfg.Driver = database.SQLite
	cfg.DBName = filepath.Join(t.TempDir(), "mesa.db")

	db, err := database.NewConnection(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Exec runs a statement and fails the test on error.
func Exec(t testing.TB, db *database.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

// Count returns SELECT COUNT(*) for the given FROM/WHERE tail.
func Count(t testing.TB, db *database.DB, tail string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM "+tail, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", tail, err)
	}
	return n
}
