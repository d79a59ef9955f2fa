package domain

import (
	"fmt"
	"time"
)

// DocumentSequence is a persisted monotonic counter per numbering scope.
// The scope key is the full document prefix (type + calendar day), so each
// day and transaction type runs its own counter. Counting rows instead would
// reuse numbers after deletions or racing inserts.
type DocumentSequence struct {
	Scope     string    `gorm:"primaryKey" json:"scope"`
	Value     int64     `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentPrefix returns the per-day, per-type stock document prefix,
// e.g. "ACTIN25-12-31-".
func DocumentPrefix(docType string, at time.Time) string {
	return fmt.Sprintf("ACT%s%s-", docType, at.Format("06-01-02"))
}

// QuotePrefix returns the per-month quotation prefix, e.g. "ACT25-12-".
func QuotePrefix(at time.Time) string {
	return fmt.Sprintf("ACT%s-", at.Format("06-01"))
}

// FormatRun renders the zero-padded running number.
func FormatRun(run int64) string {
	return fmt.Sprintf("%03d", run)
}
