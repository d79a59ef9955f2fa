package domain

import (
	"context"
	"errors"
)

type Service interface {
	Save(ctx context.Context, customer Customer) (Customer, error)
	Get(ctx context.Context, id string) (Customer, error)
	// FindByName resolves a company name to its directory entry, used for
	// quote-number generation and autocomplete. Returns ErrNotFound when
	// no entry matches.
	FindByName(ctx context.Context, companyName string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidCompanyName = errors.New("invalid_company_name")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
