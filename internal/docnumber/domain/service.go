package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Service interface {
	// NextDocumentNumber allocates the next stock document number for
	// (docType, day of at), joining the supplied transaction handle.
	NextDocumentNumber(ctx context.Context, tx *gorm.DB, docType string, at time.Time) (string, error)

	// NextQuoteNumber builds "ACTYY-MM-NNN CODE" where NNN is the highest
	// existing run for the month plus one. Gaps from deleted quotes are
	// not reused and not filled.
	NextQuoteNumber(ctx context.Context, customerCode string, at time.Time) (string, error)
}

var ErrInvalidScope = errors.New("invalid_scope")
