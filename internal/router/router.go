package router

import (
	"encoding/json"
	"net/http"

	"mesa-pos/internal/handler"
	"mesa-pos/pkg/logger"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter registers every API route on a gorilla/mux router.
func NewRouter(
	orderHandler *handler.OrderHandler,
	menuHandler *handler.MenuHandler,
	systemHandler *handler.SystemHandler,
	statsHandler *handler.StatsHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Customer endpoints
	r.HandleFunc("/api/menu", menuHandler.GetMenu).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", orderHandler.PlaceOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/order-status/{order_id:[0-9]+}", orderHandler.GetOrderStatus).Methods(http.MethodGet)

	// Kitchen and admin endpoints
	r.HandleFunc("/api/system-status", systemHandler.GetSystemStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/active-orders", orderHandler.GetActiveOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{order_id:[0-9]+}/status", orderHandler.UpdateOrderStatus).Methods(http.MethodPut)
	r.HandleFunc("/api/sales-stats", statsHandler.GetSalesStats).Methods(http.MethodGet)

	r.HandleFunc("/api/health", systemHandler.Health).Methods(http.MethodGet)

	r.NotFoundHandler = jsonError(http.StatusNotFound, "Not found")
	r.MethodNotAllowedHandler = jsonError(http.StatusMethodNotAllowed, "Method not allowed")
	return r
}

// WithMiddleware wraps the router with request logging and CORS for the
// browser front end.
func WithMiddleware(r http.Handler, log *logger.Logger, allowedOrigins []string) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", logger.RequestIDHeader}),
		handlers.ExposedHeaders([]string{logger.RequestIDHeader}),
	)
	return cors(log.HTTPMiddleware(r))
}

func jsonError(status int, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
	})
}
