package service

import (
	"context"
	"fmt"

	"mesa-pos/internal/repositories"
	"mesa-pos/models"
	"mesa-pos/pkg/logger"
)

const (
	DefaultPopularItemsLimit = 10
	MaxPopularItemsLimit     = 100
)

type StatsServiceInterface interface {
	GetSalesStats(ctx context.Context, limit int) (*models.SalesStats, error)
}

type StatsService struct {
	statsRepo    repositories.StatsRepositoryInterface
	settingsRepo repositories.SettingsRepositoryInterface
	logger       *logger.Logger
}

func NewStatsService(statsRepo repositories.StatsRepositoryInterface, settingsRepo repositories.SettingsRepositoryInterface, log *logger.Logger) *StatsService {
	return &StatsService{
		statsRepo:    statsRepo,
		settingsRepo: settingsRepo,
		logger:       log.WithComponent("stats_service"),
	}
}

// GetSalesStats reports totals and the best selling items over completed
// orders. The report can be switched off with the sales_stats flag.
func (s *StatsService) GetSalesStats(ctx context.Context, limit int) (*models.SalesStats, error) {
	if limit < 1 || limit > MaxPopularItemsLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxPopularItemsLimit)
	}

	active, err := s.settingsRepo.IsActive(ctx, models.FeatureSalesStats)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("%w: sales stats are turned off", ErrFeatureDisabled)
	}

	stats, err := s.statsRepo.GetSalesStats(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to build sales stats", "error", err)
		return nil, err
	}

	s.logger.Info("Sales stats built", "total_orders", stats.TotalOrders, "popular_items", len(stats.PopularItems))
	return stats, nil
}
