package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"mesa-pos/models"
	"mesa-pos/pkg/database"
	"mesa-pos/pkg/logger"

	"github.com/shopspring/decimal"
)

type StatsRepositoryInterface interface {
	GetSalesStats(ctx context.Context, limit int) (*models.SalesStats, error)
}

// StatsRepository reports on completed orders in the history tables.
type StatsRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewStatsRepository(logger *logger.Logger, db *database.DB) *StatsRepository {
	return &StatsRepository{
		logger: logger.WithComponent("stats_repository"),
		db:     db,
	}
}

func (r *StatsRepository) GetSalesStats(ctx context.Context, limit int) (*models.SalesStats, error) {
	r.logger.Info("Calculating sales stats", "limit", limit)

	stats := &models.SalesStats{PopularItems: []models.PopularItem{}}

	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		var revenue decimal.NullDecimal
		err := tx.QueryRowContext(ctx, "SELECT COUNT(*), SUM(total_amount) FROM order_history").
			Scan(&stats.TotalOrders, &revenue)
		if err != nil {
			return fmt.Errorf("failed to query order totals: %w", err)
		}
		stats.TotalRevenue = revenue.Decimal

		rows, err := tx.QueryContext(ctx, r.db.Dialect().Rebind(`
            SELECT item_id, MAX(item_name), SUM(quantity), SUM(quantity * price_at_order)
            FROM order_history_items
            GROUP BY item_id
            ORDER BY SUM(quantity) DESC, item_id
            LIMIT ?`), limit)
		if err != nil {
			return fmt.Errorf("failed to query popular items: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var item models.PopularItem
			if err := rows.Scan(&item.ItemID, &item.ItemName, &item.QuantitySold, &item.Revenue); err != nil {
				return fmt.Errorf("failed to scan popular item: %w", err)
			}
			stats.PopularItems = append(stats.PopularItems, item)
		}
		return rows.Err()
	})
	if err != nil {
		r.logger.Error("Failed to calculate sales stats", "error", err)
		return nil, err
	}

	return stats, nil
}
