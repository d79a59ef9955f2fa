package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidType     = errors.New("invalid_transaction_type")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidProduct  = errors.New("invalid_product")
	ErrNegativeStock   = errors.New("transaction would drive stock negative")
)

// InsufficientStockError rejects an OUT exceeding the on-hand quantity.
// The available quantity is part of the user-facing message.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock (available: %d)", e.Available)
}
