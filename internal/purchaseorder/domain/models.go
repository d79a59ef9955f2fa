package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusRFQ        Status = "RFQ"
	StatusQuotation  Status = "QUOTATION"
	StatusWaitingPO  Status = "WAITING_PO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusRFQ, StatusQuotation, StatusWaitingPO, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// Item is one quotation line. Inactive lines stay on the order for
// record-keeping but are excluded from totals and history.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
	IsActive  bool    `json:"is_active"`
}

// PurchaseOrder is a quotation/job tracked through the kanban pipeline.
// CustomerName is a value copy taken at save time, not a reference.
type PurchaseOrder struct {
	ID            snowflake.ID              `gorm:"primaryKey" json:"id"`
	PONumber      string                    `gorm:"index" json:"po_number"`
	Title         string                    `gorm:"not null" json:"title"`
	CustomerName  string                    `gorm:"not null;index" json:"customer_name"`
	ContactPerson string                    `json:"contact_person,omitempty"`
	Status        Status                    `gorm:"not null;index" json:"status"`
	StartDate     *time.Time                `json:"start_date,omitempty"`
	DueDate       *time.Time                `json:"due_date,omitempty"`
	Description   string                    `json:"description,omitempty"`
	Items         datatypes.JSONSlice[Item] `json:"items"`
	Discount      float64                   `json:"discount"`
	VAT           float64                   `json:"vat"`
	TotalAmount   float64                   `json:"total_amount"`
	// DeletedAt is stamped on entry into CANCELLED and cleared on restore.
	// Plain timestamp, deliberately not gorm's soft-delete type: pruning
	// is an explicit retention decision, not a query-time filter.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
