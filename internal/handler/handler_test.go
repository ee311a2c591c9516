package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mesa-pos/internal/service"
	"mesa-pos/models"
	"mesa-pos/pkg/logger"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type fakeOrderService struct {
	placeErr  error
	placed    service.PlaceOrderRequest
	statusErr error
	updateErr error
	updated   service.UpdateStatusRequest
}

func (f *fakeOrderService) PlaceOrder(_ context.Context, req service.PlaceOrderRequest) (int64, error) {
	f.placed = req
	return 41, f.placeErr
}

func (f *fakeOrderService) GetOrderStatus(_ context.Context, id int64) (*models.OrderStatus, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return &models.OrderStatus{Status: models.StatusInQueue, TableNumber: int(id), CustomerPhone: "555-1234"}, nil
}

func (f *fakeOrderService) GetActiveOrders(context.Context) ([]models.Order, error) {
	return []models.Order{}, nil
}

func (f *fakeOrderService) UpdateOrderStatus(_ context.Context, _ int64, req service.UpdateStatusRequest) error {
	f.updated = req
	return f.updateErr
}

func do(h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestPlaceOrderHandler(t *testing.T) {
	svc := &fakeOrderService{}
	h := NewOrderHandler(svc, logger.Discard())

	body := `{"table_number":5,"total_amount":23.50,"customer_phone":"555-1234","cart_id":"x",
        "items":[{"item_id":1,"name":"Burger","qty":2,"price":9.75}]}`
	rec := do(h.PlaceOrder, http.MethodPost, "/api/orders", body, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	got := decodeBody(t, rec)
	if got["success"] != true || got["message"] != "Order placed" || got["order_id"] != float64(41) {
		t.Errorf("unexpected body %v", got)
	}
	if svc.placed.TableNumber != 5 || len(svc.placed.Items) != 1 || svc.placed.Items[0].Price.String() != "9.75" {
		t.Errorf("request not decoded: %+v", svc.placed)
	}
}

func TestPlaceOrderHandlerErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"malformed json", `{"table_number":`, nil, http.StatusBadRequest},
		{"validation", `{}`, fmt.Errorf("%w: items is required", service.ErrInvalidInput), http.StatusBadRequest},
		{"paused", `{}`, fmt.Errorf("%w: ordering is paused", service.ErrFeatureDisabled), http.StatusServiceUnavailable},
		{"store failure", `{}`, errors.New("deadlock detected"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOrderHandler(&fakeOrderService{placeErr: tt.err}, logger.Discard())
			rec := do(h.PlaceOrder, http.MethodPost, "/api/orders", tt.body, nil)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			if msg, _ := decodeBody(t, rec)["error"].(string); msg == "" {
				t.Error("expected error message")
			}
		})
	}
}

func TestGetOrderStatusHandler(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{}, logger.Discard())

	rec := do(h.GetOrderStatus, http.MethodGet, "/api/order-status/5", "", map[string]string{"order_id": "5"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["status"] != "In Queue" || got["table_number"] != float64(5) || got["customer_phone"] != "555-1234" {
		t.Errorf("unexpected body %v", got)
	}

	missing := NewOrderHandler(&fakeOrderService{statusErr: service.ErrOrderNotFound}, logger.Discard())
	rec = do(missing.GetOrderStatus, http.MethodGet, "/api/order-status/9", "", map[string]string{"order_id": "9"})
	if rec.Code != http.StatusNotFound || decodeBody(t, rec)["error"] != "Not found" {
		t.Errorf("missing order: %d %s", rec.Code, rec.Body)
	}

	rec = do(h.GetOrderStatus, http.MethodGet, "/api/order-status/abc", "", map[string]string{"order_id": "abc"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("non-numeric id: %d", rec.Code)
	}
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	vars := map[string]string{"order_id": "3"}

	svc := &fakeOrderService{}
	h := NewOrderHandler(svc, logger.Discard())
	rec := do(h.UpdateOrderStatus, http.MethodPut, "/api/orders/3/status", `{"status":"Preparing"}`, vars)
	if rec.Code != http.StatusOK || decodeBody(t, rec)["success"] != true {
		t.Fatalf("update: %d %s", rec.Code, rec.Body)
	}
	if svc.updated.Status != "Preparing" {
		t.Errorf("status passed = %q", svc.updated.Status)
	}

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"empty body", ``, nil, http.StatusBadRequest},
		{"invalid", `{"status":""}`, fmt.Errorf("%w: status is required", service.ErrInvalidInput), http.StatusBadRequest},
		{"not found", `{"status":"Ready"}`, service.ErrOrderNotFound, http.StatusNotFound},
		{"completed", `{"status":"Ready"}`, fmt.Errorf("%w: order 3", service.ErrOrderCompleted), http.StatusConflict},
		{"store failure", `{"status":"Ready"}`, errors.New("lock wait timeout"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOrderHandler(&fakeOrderService{updateErr: tt.err}, logger.Discard())
			rec := do(h.UpdateOrderStatus, http.MethodPut, "/api/orders/3/status", tt.body, vars)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestGetActiveOrdersHandlerEmpty(t *testing.T) {
	h := NewOrderHandler(&fakeOrderService{}, logger.Discard())
	rec := do(h.GetActiveOrders, http.MethodGet, "/api/active-orders", "", nil)
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("active orders: %d %q", rec.Code, rec.Body)
	}
}

type fakeMenuService struct{ err error }

func (f fakeMenuService) GetMenu(context.Context) ([]models.MenuItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []models.MenuItem{{ItemID: 1, Name: "Burger", Availability: true}}, nil
}

func TestGetMenuHandler(t *testing.T) {
	rec := do(NewMenuHandler(fakeMenuService{}, logger.Discard()).GetMenu, http.MethodGet, "/api/menu", "", nil)
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil || len(items) != 1 || items[0]["name"] != "Burger" {
		t.Fatalf("menu: %d %s (%v)", rec.Code, rec.Body, err)
	}

	rec = do(NewMenuHandler(fakeMenuService{err: errors.New("db down")}, logger.Discard()).GetMenu, http.MethodGet, "/api/menu", "", nil)
	if rec.Code != http.StatusInternalServerError || decodeBody(t, rec)["error"] != "db down" {
		t.Errorf("menu failure: %d %s", rec.Code, rec.Body)
	}
}

type pricedMenuService struct{}

func (pricedMenuService) GetMenu(context.Context) ([]models.MenuItem, error) {
	return []models.MenuItem{{ItemID: 1, Name: "Burger", Price: decimal.RequireFromString("9.75"), Availability: true}}, nil
}

func TestMoneyIsEncodedAsNumber(t *testing.T) {
	rec := do(NewMenuHandler(pricedMenuService{}, logger.Discard()).GetMenu, http.MethodGet, "/api/menu", "", nil)

	if !strings.Contains(rec.Body.String(), `"price":9.75`) {
		t.Fatalf("price not encoded as a JSON number: %s", rec.Body)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if price, ok := items[0]["price"].(float64); !ok || price != 9.75 {
		t.Errorf("price = %#v", items[0]["price"])
	}
}

type fakeSystemService struct{ healthErr error }

func (f fakeSystemService) GetSystemStatus(context.Context) (map[string]bool, error) {
	return map[string]bool{"global_service": true, "sales_stats": false}, nil
}

func (f fakeSystemService) Health(context.Context) error { return f.healthErr }

func TestSystemHandlers(t *testing.T) {
	h := NewSystemHandler(fakeSystemService{}, logger.Discard())

	got := decodeBody(t, do(h.GetSystemStatus, http.MethodGet, "/api/system-status", "", nil))
	if got["global_service"] != true || got["sales_stats"] != false {
		t.Errorf("system status = %v", got)
	}

	rec := do(h.Health, http.MethodGet, "/api/health", "", nil)
	if rec.Code != http.StatusOK || decodeBody(t, rec)["status"] != "ok" {
		t.Errorf("health: %d %s", rec.Code, rec.Body)
	}

	down := NewSystemHandler(fakeSystemService{healthErr: errors.New("ping failed")}, logger.Discard())
	if rec := do(down.Health, http.MethodGet, "/api/health", "", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy: %d", rec.Code)
	}
}

type fakeStatsService struct {
	limit int
	err   error
}

func (f *fakeStatsService) GetSalesStats(_ context.Context, limit int) (*models.SalesStats, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return &models.SalesStats{PopularItems: []models.PopularItem{}}, nil
}

func TestGetSalesStatsHandler(t *testing.T) {
	svc := &fakeStatsService{}
	h := NewStatsHandler(svc, logger.Discard())

	if rec := do(h.GetSalesStats, http.MethodGet, "/api/sales-stats", "", nil); rec.Code != http.StatusOK || svc.limit != service.DefaultPopularItemsLimit {
		t.Errorf("default limit: %d, limit %d", rec.Code, svc.limit)
	}
	if do(h.GetSalesStats, http.MethodGet, "/api/sales-stats?limit=3", "", nil); svc.limit != 3 {
		t.Errorf("limit = %d", svc.limit)
	}
	if rec := do(h.GetSalesStats, http.MethodGet, "/api/sales-stats?limit=ten", "", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric limit: %d", rec.Code)
	}

	off := NewStatsHandler(&fakeStatsService{err: service.ErrFeatureDisabled}, logger.Discard())
	if rec := do(off.GetSalesStats, http.MethodGet, "/api/sales-stats", "", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("disabled: %d", rec.Code)
	}
}
