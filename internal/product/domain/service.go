package domain

import (
	"context"
	"errors"
)

type Service interface {
	Save(ctx context.Context, product Product) (Product, error)
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName = errors.New("invalid_product_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
