package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderSample is the slice of a purchase order the histogram needs.
type OrderSample struct {
	StartDate   *time.Time
	CreatedAt   time.Time
	TotalAmount float64
}

type Repository interface {
	CountProducts(ctx context.Context, db *gorm.DB) (int64, error)
	SumStock(ctx context.Context, db *gorm.DB) (int64, error)
	SumStockValue(ctx context.Context, db *gorm.DB) (float64, error)
	CountLowStock(ctx context.Context, db *gorm.DB) (int64, error)
	CountActiveOrders(ctx context.Context, db *gorm.DB) (int64, error)
	CountUnreadMessages(ctx context.Context, db *gorm.DB) (int64, error)
	OrderSamples(ctx context.Context, db *gorm.DB) ([]OrderSample, error)
}
