package domain

import (
	"context"
	"errors"
	"io"
)

type ImportRow struct {
	CustomerName string  `json:"customer_name"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	Unit         string  `json:"unit"`
	QuotedDate   string  `json:"quoted_date"`
	OrderNumber  string  `json:"po_number"`
	Quantity     float64 `json:"quantity"`
}

type Service interface {
	// SyncFromOrder replaces every history row tagged with the order's id
	// with one fresh row per active line item. Saving the same order twice
	// leaves exactly one row per active item.
	SyncFromOrder(ctx context.Context, snap OrderSnapshot) error

	// Import appends rows without deduplication; it is the one-time
	// migration path for spreadsheet history predating any order.
	Import(ctx context.Context, rows []ImportRow) (int, error)

	// ImportXLSX parses the first sheet (header row then
	// customer|product|price|unit|quantity|date|po number) and imports it.
	// A malformed file is rejected whole; no rows are applied.
	ImportXLSX(ctx context.Context, r io.Reader) (int, error)

	// Search filters by exact customer name and case-insensitive product
	// substring, deduplicated by product name preferring the newest quote.
	Search(ctx context.Context, customerName, query string) ([]CustomerProduct, error)

	List(ctx context.Context) ([]CustomerProduct, error)
}

var (
	ErrInvalidCustomer = errors.New("invalid_customer_name")
	ErrInvalidOrder    = errors.New("invalid_order")
	ErrMalformedImport = errors.New("malformed import payload")
	ErrEmptyImport     = errors.New("import contains no rows")
)
