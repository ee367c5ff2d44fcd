package file

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidCategory = errors.New("invalid file category")
	ErrValidation      = errors.New("validation error")
)
