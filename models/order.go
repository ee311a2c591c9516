package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses used by the kitchen display. Any non-empty string is
// accepted as a status; only StatusCompleted has special meaning.
const (
	StatusInQueue   = "In Queue"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusCompleted = "Completed"
)

// Order is a row of active_orders or order_history, plus its items.
type Order struct {
	OrderID       int64           `json:"order_id" db:"order_id"`
	TableNumber   int             `json:"table_number" db:"table_number"`
	TotalAmount   decimal.Decimal `json:"total_amount" db:"total_amount"`
	Status        string          `json:"status" db:"status"`
	Instructions  string          `json:"instructions" db:"instructions"`
	SpotifyLink   string          `json:"spotify_link" db:"spotify_link"`
	CustomerPhone string          `json:"customer_phone" db:"customer_phone"`
	OrderTime     time.Time       `json:"order_time" db:"order_time"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem is a snapshot of a menu line at the time the order was placed.
// ItemName and PriceAtOrder never follow later menu edits.
type OrderItem struct {
	ID           int64           `json:"id" db:"id"`
	OrderID      int64           `json:"order_id" db:"order_id"`
	ItemID       int64           `json:"item_id" db:"item_id"`
	ItemName     string          `json:"item_name" db:"item_name"`
	Quantity     int             `json:"quantity" db:"quantity"`
	PriceAtOrder decimal.Decimal `json:"price_at_order" db:"price_at_order"`
}

// OrderStatus is the customer-facing view of an order.
type OrderStatus struct {
	Status        string `json:"status"`
	TableNumber   int    `json:"table_number"`
	CustomerPhone string `json:"customer_phone"`
}
