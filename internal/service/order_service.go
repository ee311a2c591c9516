package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mesa-pos/internal/repositories"
	"mesa-pos/models"
	"mesa-pos/pkg/logger"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the body of POST /api/orders. Prices and names are
// taken from the client as a snapshot; the menu is not consulted.
type PlaceOrderRequest struct {
	TableNumber   int              `json:"table_number" validate:"gt=0"`
	TotalAmount   *decimal.Decimal `json:"total_amount" validate:"required"`
	CustomerPhone string           `json:"customer_phone" validate:"required,max=32"`
	Instructions  string           `json:"instructions"`
	SpotifyLink   string           `json:"spotify_link" validate:"max=512"`
	Items         []PlaceOrderItem `json:"items" validate:"required,min=1,dive"`
}

type PlaceOrderItem struct {
	ItemID int64            `json:"item_id" validate:"required"`
	Name   string           `json:"name" validate:"required,max=255"`
	Qty    int              `json:"qty" validate:"gt=0"`
	Price  *decimal.Decimal `json:"price" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error)
	GetOrderStatus(ctx context.Context, orderID int64) (*models.OrderStatus, error)
	GetActiveOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, req UpdateStatusRequest) error
}

type OrderService struct {
	orderRepo    repositories.OrderRepositoryInterface
	settingsRepo repositories.SettingsRepositoryInterface
	logger       *logger.Logger
}

func NewOrderService(orderRepo repositories.OrderRepositoryInterface, settingsRepo repositories.SettingsRepositoryInterface, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		logger:       logger.WithComponent("order_service"),
	}
}

// PlaceOrder stores a new order and its items atomically and returns the
// generated order id.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	s.logger.Info("Placing order", "table_number", req.TableNumber, "items", len(req.Items))

	active, err := s.settingsRepo.IsActive(ctx, models.FeatureGlobalService)
	if err != nil {
		return 0, err
	}
	if !active {
		s.logger.Warn("Order rejected: service paused")
		return 0, fmt.Errorf("%w: ordering is paused", ErrFeatureDisabled)
	}

	if err := s.validatePlaceOrder(req); err != nil {
		s.logger.Warn("Order rejected: invalid data", "error", err)
		return 0, err
	}

	order := &models.Order{
		TableNumber:   req.TableNumber,
		TotalAmount:   *req.TotalAmount,
		Instructions:  req.Instructions,
		SpotifyLink:   req.SpotifyLink,
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Items:         make([]models.OrderItem, len(req.Items)),
	}
	for i, item := range req.Items {
		order.Items[i] = models.OrderItem{
			ItemID:       item.ItemID,
			ItemName:     item.Name,
			Quantity:     item.Qty,
			PriceAtOrder: *item.Price,
		}
	}

	orderID, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Order placed", "order_id", orderID, "total_amount", order.TotalAmount)
	return orderID, nil
}

// GetOrderStatus reports status, table and phone for an active or
// completed order.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID int64) (*models.OrderStatus, error) {
	status, err := s.orderRepo.GetStatus(ctx, orderID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return status, nil
}

func (s *OrderService) GetActiveOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.ListActive(ctx)
}

// UpdateOrderStatus moves an order through the kitchen workflow. "Completed"
// archives the order; completing an archived order again is a no-op.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID int64, req UpdateStatusRequest) error {
	req.Status = strings.TrimSpace(req.Status)
	if err := validateStruct(req); err != nil {
		return err
	}

	s.logger.Info("Updating order status", "order_id", orderID, "status", req.Status)

	var err error
	if req.Status == models.StatusCompleted {
		err = s.orderRepo.Complete(ctx, orderID)
		if errors.Is(err, repositories.ErrArchived) {
			s.logger.Info("Order already completed, nothing to do", "order_id", orderID)
			return nil
		}
	} else {
		err = s.orderRepo.UpdateStatus(ctx, orderID, req.Status)
		if errors.Is(err, repositories.ErrArchived) {
			return fmt.Errorf("%w: cannot set %q on order %d", ErrOrderCompleted, req.Status, orderID)
		}
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}

func (s *OrderService) validatePlaceOrder(req PlaceOrderRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer_phone is required", ErrInvalidInput)
	}
	if req.TotalAmount.IsNegative() {
		return fmt.Errorf("%w: total_amount cannot be negative", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: items[%d].price cannot be negative", ErrInvalidInput, i)
		}
	}
	return nil
}
