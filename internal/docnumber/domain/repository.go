package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Increment bumps the counter for scope and returns the new value.
	// It must run inside the caller's transaction so a rolled-back
	// document leaves the counter untouched.
	Increment(ctx context.Context, db *gorm.DB, scope string) (int64, error)

	// QuoteNumbers returns all purchase-order quote numbers sharing prefix.
	QuoteNumbers(ctx context.Context, db *gorm.DB, prefix string) ([]string, error)
}
