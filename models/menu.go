package models

import "github.com/shopspring/decimal"

// MenuItem is a row of menu_items. The menu is read-only for this service.
type MenuItem struct {
	ItemID       int64           `json:"item_id" db:"item_id"`
	Name         string          `json:"name" db:"name"`
	Description  string          `json:"description" db:"description"`
	Category     string          `json:"category" db:"category"`
	Price        decimal.Decimal `json:"price" db:"price"`
	Availability bool            `json:"availability" db:"availability"`
}

// PopularItem is one line of the sales report, built from order history.
type PopularItem struct {
	ItemID       int64           `json:"item_id"`
	ItemName     string          `json:"item_name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// SalesStats aggregates completed orders.
type SalesStats struct {
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	PopularItems []PopularItem   `json:"popular_items"`
}
