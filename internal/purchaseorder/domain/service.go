package domain

import (
	"context"
	"errors"
)

// RetentionDays is how long a cancelled order survives before the sweep
// drops it for good.
const RetentionDays = 30

type Service interface {
	// Save upserts the order, recomputes totals from active lines, assigns
	// a quote number to new orders when the customer has a short code, and
	// resynchronizes the customer purchase history.
	Save(ctx context.Context, po PurchaseOrder) (PurchaseOrder, error)

	// UpdateStatus moves the order between pipeline columns. Entering
	// CANCELLED stamps DeletedAt; leaving it clears the stamp, which also
	// exempts the order from the retention sweep.
	UpdateStatus(ctx context.Context, id string, status Status) (PurchaseOrder, error)

	// Delete removes the order permanently. The caller (the board's
	// confirmation dialog) is responsible for only offering this on
	// cancelled orders; the operation itself does not re-check.
	Delete(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (PurchaseOrder, error)

	// List applies the retention sweep, then returns the surviving orders.
	List(ctx context.Context) ([]PurchaseOrder, error)

	// PruneExpired drops cancelled orders past the retention window.
	// Idempotent; safe to invoke on every read or on a schedule.
	PruneExpired(ctx context.Context) (int64, error)
}

var (
	ErrInvalidTitle        = errors.New("invalid_title")
	ErrInvalidCustomerName = errors.New("invalid_customer_name")
	ErrInvalidStatus       = errors.New("invalid_status")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
