package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindLevel(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*StockLevel, error)
	SaveLevel(ctx context.Context, db *gorm.DB, level *StockLevel) error
	ListLevels(ctx context.Context, db *gorm.DB) ([]StockLevel, error)

	InsertTransaction(ctx context.Context, db *gorm.DB, tx *StockTransaction) error
	// ListTransactions returns newest first; index 0 being the latest
	// entry is an observable contract the board and dashboard rely on.
	ListTransactions(ctx context.Context, db *gorm.DB) ([]StockTransaction, error)
	ListTransactionsByProduct(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]StockTransaction, error)
}
