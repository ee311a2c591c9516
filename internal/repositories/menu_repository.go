package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"mesa-pos/models"
	"mesa-pos/pkg/database"
	"mesa-pos/pkg/logger"
)

type MenuRepositoryInterface interface {
	GetAvailable(ctx context.Context) ([]models.MenuItem, error)
}

type MenuRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewMenuRepository(logger *logger.Logger, db *database.DB) *MenuRepository {
	return &MenuRepository{
		logger: logger.WithComponent("menu_repository"),
		db:     db,
	}
}

// GetAvailable returns every menu item currently offered, ordered by id.
func (r *MenuRepository) GetAvailable(ctx context.Context) ([]models.MenuItem, error) {
	r.logger.Debug("Retrieving available menu items")

	query := r.db.Dialect().Rebind(`
        SELECT item_id, name, description, category, price, availability
        FROM menu_items
        WHERE availability = ?
        ORDER BY item_id`)

	rows, err := r.db.QueryContext(ctx, query, true)
	if err != nil {
		r.logger.Error("Failed to query menu items", "error", err)
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var (
			item        models.MenuItem
			description sql.NullString
		)
		if err := rows.Scan(&item.ItemID, &item.Name, &description, &item.Category, &item.Price, &item.Availability); err != nil {
			r.logger.Error("Failed to scan menu item", "error", err)
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Description = description.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	r.logger.Debug("Retrieved menu items", "count", len(items))
	return items, nil
}
