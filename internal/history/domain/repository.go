package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	DeleteByOrder(ctx context.Context, db *gorm.DB, orderID snowflake.ID) error
	Insert(ctx context.Context, db *gorm.DB, rows []CustomerProduct) error
	// List and ListByCustomer return rows newest first by quoted date.
	List(ctx context.Context, db *gorm.DB) ([]CustomerProduct, error)
	ListByCustomer(ctx context.Context, db *gorm.DB, customerName string) ([]CustomerProduct, error)
}
