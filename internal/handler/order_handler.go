package handler

import (
	"net/http"

	"mesa-pos/internal/service"
	"mesa-pos/pkg/logger"
)

type OrderHandler struct {
	orderService service.OrderServiceInterface
	logger       *logger.Logger
}

// NewOrderHandler creates a new OrderHandler with the given service and logger
func NewOrderHandler(orderService service.OrderServiceInterface, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger.WithComponent("order_handler"),
	}
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	var req service.PlaceOrderRequest
	if err := parseRequestBody(r, &req); err != nil {
		log.Warn("Invalid request body for place order", "error", err)
		writeErrorResponse(w, log, http.StatusBadRequest, "Invalid request body")
		return
	}

	orderID, err := h.orderService.PlaceOrder(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, placeOrderResponse{Success: true, Message: "Order placed", OrderID: orderID})
}

// GetOrderStatus handles GET /api/order-status/{order_id}
func (h *OrderHandler) GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	orderID, ok := orderIDFromPath(r)
	if !ok {
		writeErrorResponse(w, log, http.StatusNotFound, "Not found")
		return
	}

	status, err := h.orderService.GetOrderStatus(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, status)
}

// GetActiveOrders handles GET /api/active-orders
func (h *OrderHandler) GetActiveOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	orders, err := h.orderService.GetActiveOrders(r.Context())
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/orders/{order_id}/status
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context(), h.logger)

	orderID, ok := orderIDFromPath(r)
	if !ok {
		writeErrorResponse(w, log, http.StatusNotFound, "Not found")
		return
	}

	var req service.UpdateStatusRequest
	if err := parseRequestBody(r, &req); err != nil {
		log.Warn("Invalid request body for status update", "order_id", orderID, "error", err)
		writeErrorResponse(w, log, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.orderService.UpdateOrderStatus(r.Context(), orderID, req); err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSONResponse(w, log, http.StatusOK, successResponse{Success: true})
}
