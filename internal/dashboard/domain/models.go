package domain

import (
	"context"
	"time"
)

type Stats struct {
	TotalProducts  int64   `json:"total_products"`
	TotalStock     int64   `json:"total_stock"`
	LowStockCount  int64   `json:"low_stock_count"`
	TotalValue     float64 `json:"total_value"`
	ActiveJobs     int64   `json:"active_jobs"`
	UnreadMessages int64   `json:"unread_messages"`
}

// MonthlyJobs is one bucket of the order histogram, keyed by the month of
// the order's start date (creation time when no start date is set).
type MonthlyJobs struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

// MonthlyBucketLimit caps the histogram at the most recent months.
const MonthlyBucketLimit = 12

type Service interface {
	Stats(ctx context.Context) (Stats, error)
	MonthlyJobs(ctx context.Context) ([]MonthlyJobs, error)
}
