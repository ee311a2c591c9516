package repositories

import "errors"

var (
	// ErrNotFound is returned when a row does not exist in any store.
	ErrNotFound = errors.New("not found")
	// ErrArchived is returned when an order has already moved to history.
	ErrArchived = errors.New("order already archived")
)
