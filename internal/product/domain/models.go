package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Product is the catalog entry. Transactions and order lines reference it
// by id/name only; deleting a product leaves its history intact.
type Product struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	ProductCode    string       `gorm:"not null;index" json:"product_code"`
	ProductName    string       `gorm:"not null;index" json:"product_name"`
	Location       string       `json:"location,omitempty"`
	Unit           string       `json:"unit"`
	Cost           float64      `json:"cost"`
	Price          float64      `json:"price"`
	Barcode        string       `json:"barcode,omitempty"`
	MinStockLevel  int64        `json:"min_stock_level"`
	WeightPerPiece float64      `json:"weight_per_piece"`
	Supplier       string       `json:"supplier,omitempty"`
	ImageFileID    string       `json:"image_file_id,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
