package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mesa-pos/pkg/database"
	"mesa-pos/pkg/logger"
)

type SettingsRepositoryInterface interface {
	GetAll(ctx context.Context) (map[string]bool, error)
	IsActive(ctx context.Context, feature string) (bool, error)
}

type SettingsRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewSettingsRepository(logger *logger.Logger, db *database.DB) *SettingsRepository {
	return &SettingsRepository{
		logger: logger.WithComponent("settings_repository"),
		db:     db,
	}
}

// GetAll maps every feature name to its is_active flag.
func (r *SettingsRepository) GetAll(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT feature_name, is_active FROM system_settings")
	if err != nil {
		r.logger.Error("Failed to query system settings", "error", err)
		return nil, fmt.Errorf("failed to query system settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]bool)
	for rows.Next() {
		var (
			name   string
			active bool
		)
		if err := rows.Scan(&name, &active); err != nil {
			return nil, fmt.Errorf("failed to scan system setting: %w", err)
		}
		settings[name] = active
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate system settings: %w", err)
	}
	return settings, nil
}

// IsActive reports whether a feature is enabled. A feature without a row
// counts as enabled.
func (r *SettingsRepository) IsActive(ctx context.Context, feature string) (bool, error) {
	query := r.db.Dialect().Rebind("SELECT is_active FROM system_settings WHERE feature_name = ?")

	var active bool
	err := r.db.QueryRowContext(ctx, query, feature).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		r.logger.Error("Failed to read feature flag", "feature", feature, "error", err)
		return false, fmt.Errorf("failed to read feature flag %s: %w", feature, err)
	}
	return active, nil
}
