package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, db *gorm.DB, po *PurchaseOrder) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*PurchaseOrder, error)
	// List returns orders in creation order, matching the board's
	// append-at-the-end behavior.
	List(ctx context.Context, db *gorm.DB) ([]PurchaseOrder, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	// DeleteExpired removes CANCELLED orders whose deleted_at is before
	// cutoff and reports how many rows went.
	DeleteExpired(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error)
}
