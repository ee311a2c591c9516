package database

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Schema returns the DDL statements for the dialect, in execution order.
func Schema(d Dialect) ([]string, error) {
	raw, err := schemaFS.ReadFile("schema/" + string(d) + ".sql")
	if err != nil {
		return nil, fmt.Errorf("no schema for dialect %q: %w", d, err)
	}

	var stmts []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// Migrate creates missing tables and seeds the default feature flags.
// Every statement is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	stmts, err := Schema(db.dialect)
	if err != nil {
		return err
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.logger.Error("Schema statement failed", "index", i, "error", err)
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	db.logger.Info("Schema applied", "dialect", db.dialect, "statements", len(stmts))
	return nil
}
