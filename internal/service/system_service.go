package service

import (
	"context"

	"mesa-pos/internal/repositories"
	"mesa-pos/pkg/logger"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type SystemServiceInterface interface {
	GetSystemStatus(ctx context.Context) (map[string]bool, error)
	Health(ctx context.Context) error
}

type SystemService struct {
	settingsRepo repositories.SettingsRepositoryInterface
	db           HealthChecker
	logger       *logger.Logger
}

func NewSystemService(settingsRepo repositories.SettingsRepositoryInterface, db HealthChecker, logger *logger.Logger) *SystemService {
	return &SystemService{
		settingsRepo: settingsRepo,
		db:           db,
		logger:       logger.WithComponent("system_service"),
	}
}

// GetSystemStatus maps every feature flag to whether it is on.
func (s *SystemService) GetSystemStatus(ctx context.Context) (map[string]bool, error) {
	return s.settingsRepo.GetAll(ctx)
}

func (s *SystemService) Health(ctx context.Context) error {
	if err := s.db.HealthCheck(ctx); err != nil {
		s.logger.Warn("Health check failed", "error", err)
		return err
	}
	return nil
}
