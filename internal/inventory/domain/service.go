package domain

import (
	"context"
)

type RecordTransactionRequest struct {
	Type      TransactionType
	ProductID string
	Quantity  int64
	UserID    string
	Notes     string
}

type Service interface {
	// RecordTransaction applies the stock movement, allocates a document
	// number, and appends the ledger entry. The level update, counter
	// bump, and append commit or roll back together.
	RecordTransaction(ctx context.Context, req RecordTransactionRequest) (StockTransaction, error)

	// StockLevel returns the current quantity for a product, 0 when no
	// transaction has touched it yet.
	StockLevel(ctx context.Context, productID string) (int64, error)

	Levels(ctx context.Context) ([]StockLevel, error)
	Transactions(ctx context.Context) ([]StockTransaction, error)
}
