package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrValidation    = errors.New("validation error")
)
