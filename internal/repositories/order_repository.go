package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mesa-pos/models"
	"mesa-pos/pkg/database"
	"mesa-pos/pkg/logger"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (int64, error)
	GetStatus(ctx context.Context, orderID int64) (*models.OrderStatus, error)
	ListActive(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string) error
	Complete(ctx context.Context, orderID int64) error
}

type OrderRepository struct {
	logger *logger.Logger
	db     *database.DB
}

func NewOrderRepository(logger *logger.Logger, db *database.DB) *OrderRepository {
	return &OrderRepository{
		logger: logger.WithComponent("order_repository"),
		db:     db,
	}
}

// Create inserts the order with status "In Queue" and one order_items row
// per item, all in one transaction. It returns the generated order id and
// fills OrderID on the order and its items.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (int64, error) {
	d := r.db.Dialect()

	var orderID int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		orderID, err = d.InsertReturningID(ctx, tx, "order_id", `
            INSERT INTO active_orders
            (table_number, total_amount, status, instructions, spotify_link, customer_phone)
            VALUES (?, ?, ?, ?, ?, ?)`,
			order.TableNumber, order.TotalAmount, models.StatusInQueue,
			order.Instructions, order.SpotifyLink, order.CustomerPhone)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		itemQuery := d.Rebind(`
            INSERT INTO order_items (order_id, item_id, item_name, quantity, price_at_order)
            VALUES (?, ?, ?, ?, ?)`)
		for i, item := range order.Items {
			if _, err := tx.ExecContext(ctx, itemQuery, orderID, item.ItemID, item.ItemName, item.Quantity, item.PriceAtOrder); err != nil {
				return fmt.Errorf("failed to insert item %d of order: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to create order", "table_number", order.TableNumber, "error", err)
		return 0, err
	}

	order.OrderID = orderID
	order.Status = models.StatusInQueue
	for i := range order.Items {
		order.Items[i].OrderID = orderID
	}

	r.logger.Info("Order created", "order_id", orderID, "items", len(order.Items))
	return orderID, nil
}

// GetStatus reads an order's status from the active store, falling back to
// history for completed orders.
func (r *OrderRepository) GetStatus(ctx context.Context, orderID int64) (*models.OrderStatus, error) {
	d := r.db.Dialect()

	for _, table := range []string{"active_orders", "order_history"} {
		query := d.Rebind("SELECT status, table_number, customer_phone FROM " + table + " WHERE order_id = ?")

		var st models.OrderStatus
		err := r.db.QueryRowContext(ctx, query, orderID).Scan(&st.Status, &st.TableNumber, &st.CustomerPhone)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			r.logger.Error("Failed to query order status", "order_id", orderID, "table", table, "error", err)
			return nil, fmt.Errorf("failed to query order status: %w", err)
		}
		return &st, nil
	}

	return nil, ErrNotFound
}

// ListActive returns every active order, newest first, with its items.
// Orders and items are read in one transaction and joined in memory.
func (r *OrderRepository) ListActive(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}

	err := r.db.WithReadTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
            SELECT order_id, table_number, total_amount, status, instructions,
                   spotify_link, customer_phone, order_time
            FROM active_orders
            ORDER BY order_time DESC, order_id DESC`)
		if err != nil {
			return fmt.Errorf("failed to query active orders: %w", err)
		}
		defer rows.Close()

		index := make(map[int64]int)
		for rows.Next() {
			var o models.Order
			if err := rows.Scan(&o.OrderID, &o.TableNumber, &o.TotalAmount, &o.Status, &o.Instructions,
				&o.SpotifyLink, &o.CustomerPhone, &o.OrderTime); err != nil {
				return fmt.Errorf("failed to scan active order: %w", err)
			}
			o.Items = []models.OrderItem{}
			index[o.OrderID] = len(orders)
			orders = append(orders, o)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("failed to iterate active orders: %w", err)
		}
		rows.Close()

		if len(orders) == 0 {
			return nil
		}

		itemRows, err := tx.QueryContext(ctx, `
            SELECT i.id, i.order_id, i.item_id, i.item_name, i.quantity, i.price_at_order
            FROM order_items i
            JOIN active_orders o ON o.order_id = i.order_id
            ORDER BY i.order_id, i.id`)
		if err != nil {
			return fmt.Errorf("failed to query order items: %w", err)
		}
		defer itemRows.Close()

		for itemRows.Next() {
			var it models.OrderItem
			if err := itemRows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.ItemName, &it.Quantity, &it.PriceAtOrder); err != nil {
				return fmt.Errorf("failed to scan order item: %w", err)
			}
			if pos, ok := index[it.OrderID]; ok {
				orders[pos].Items = append(orders[pos].Items, it)
			}
		}
		return itemRows.Err()
	})
	if err != nil {
		r.logger.Error("Failed to list active orders", "error", err)
		return nil, err
	}

	r.logger.Debug("Listed active orders", "count", len(orders))
	return orders, nil
}

// UpdateStatus sets the status of an active order. It returns ErrArchived
// when the order is already in history and ErrNotFound when it is nowhere.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	d := r.db.Dialect()

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockActive(ctx, tx, orderID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, d.Rebind("UPDATE active_orders SET status = ? WHERE order_id = ?"), status, orderID)
		if err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Order status updated", "order_id", orderID, "status", status)
	return nil
}

// Complete moves an active order and its items into the history tables
// with status "Completed" and removes them from the active store.
func (r *OrderRepository) Complete(ctx context.Context, orderID int64) error {
	d := r.db.Dialect()

	stmts := []struct {
		name  string
		query string
	}{
		{"copy order to history", `
            INSERT INTO order_history
            (order_id, table_number, total_amount, status, instructions, spotify_link, customer_phone, order_time)
            SELECT order_id, table_number, total_amount, 'Completed', instructions, spotify_link, customer_phone, order_time
            FROM active_orders WHERE order_id = ?`},
		{"copy items to history", `
            INSERT INTO order_history_items (id, order_id, item_id, item_name, quantity, price_at_order)
            SELECT id, order_id, item_id, item_name, quantity, price_at_order
            FROM order_items WHERE order_id = ?`},
		{"delete items", "DELETE FROM order_items WHERE order_id = ?"},
		{"delete order", "DELETE FROM active_orders WHERE order_id = ?"},
	}

	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := r.lockActive(ctx, tx, orderID); err != nil {
			return err
		}
		for _, s := range stmts {
			if _, err := tx.ExecContext(ctx, d.Rebind(s.query), orderID); err != nil {
				return fmt.Errorf("failed to %s: %w", s.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Order completed and archived", "order_id", orderID)
	return nil
}

// lockActive locks the active row for the rest of the transaction. When the
// row is missing it tells apart archived orders from unknown ids.
func (r *OrderRepository) lockActive(ctx context.Context, tx *sql.Tx, orderID int64) error {
	d := r.db.Dialect()

	var id int64
	err := tx.QueryRowContext(ctx, d.Rebind("SELECT order_id FROM active_orders WHERE order_id = ?"+d.ForUpdate()), orderID).Scan(&id)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to lock order: %w", err)
	}

	var archived int
	if err := tx.QueryRowContext(ctx, d.Rebind("SELECT COUNT(*) FROM order_history WHERE order_id = ?"), orderID).Scan(&archived); err != nil {
		return fmt.Errorf("failed to check order history: %w", err)
	}
	if archived > 0 {
		return ErrArchived
	}
	return ErrNotFound
}
