package service

import (
	"context"

	"mesa-pos/internal/repositories"
	"mesa-pos/models"
	"mesa-pos/pkg/logger"
)

type MenuServiceInterface interface {
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
}

type MenuService struct {
	menuRepo repositories.MenuRepositoryInterface
	logger   *logger.Logger
}

func NewMenuService(menuRepo repositories.MenuRepositoryInterface, logger *logger.Logger) *MenuService {
	return &MenuService{
		menuRepo: menuRepo,
		logger:   logger.WithComponent("menu_service"),
	}
}

// GetMenu returns the items customers can order right now.
func (s *MenuService) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.menuRepo.GetAvailable(ctx)
	if err != nil {
		s.logger.Error("Failed to get menu items from repository", "error", err)
		return nil, err
	}

	s.logger.Debug("Fetched menu items", "count", len(items))
	return items, nil
}
