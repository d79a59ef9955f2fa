package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CustomerProduct is one row of the derived per-customer quote history.
// Rows tagged with an order id are replaced wholesale on every save of
// that order; rows without one come from bulk imports.
type CustomerProduct struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerName   string       `gorm:"not null;index" json:"customer_name"`
	ProductName    string       `gorm:"not null;index" json:"product_name"`
	Price          float64      `json:"price"`
	Unit           string       `json:"unit"`
	LastQuotedDate time.Time    `gorm:"not null;index" json:"last_quoted_date"`
	OrderID        snowflake.ID `gorm:"index" json:"po_id,omitempty"`
	OrderNumber    string       `json:"po_number,omitempty"`
	Quantity       float64      `json:"quantity,omitempty"`
}

// OrderSnapshot is the slice of a purchase order the history index needs.
// Defined here so the order module can depend on this package without a cycle.
type OrderSnapshot struct {
	OrderID      snowflake.ID
	OrderNumber  string
	CustomerName string
	QuotedAt     time.Time
	Items        []OrderItem
}

type OrderItem struct {
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice float64
	Active    bool
}
