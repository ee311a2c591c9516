package service

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderCompleted  = errors.New("order already completed")
	ErrFeatureDisabled = errors.New("feature disabled")
	ErrInvalidInput    = errors.New("invalid input")
)
