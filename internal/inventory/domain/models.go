package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
	TransactionAdj TransactionType = "ADJ"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdj:
		return true
	default:
		return false
	}
}

// StockLevel holds the derived on-hand quantity for one product.
// Rows are created lazily on the first transaction and only ever
// mutated by the ledger.
type StockLevel struct {
	ProductID snowflake.ID `gorm:"primaryKey" json:"product_id"`
	Quantity  int64        `gorm:"not null" json:"quantity"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// StockTransaction is an append-only ledger entry. ADJ is a directional
// correction that adds quantity; setting an absolute level is the
// caller's job.
type StockTransaction struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	DocumentNumber string          `gorm:"uniqueIndex;not null" json:"document_number"`
	Date           time.Time       `gorm:"not null;index" json:"date"`
	Type           TransactionType `gorm:"not null" json:"type"`
	ProductID      snowflake.ID    `gorm:"not null;index" json:"product_id"`
	Quantity       int64           `gorm:"not null" json:"quantity"`
	UserID         snowflake.ID    `json:"user_id"`
	Notes          string          `json:"notes,omitempty"`
}
