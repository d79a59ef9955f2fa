package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	List(ctx context.Context, db *gorm.DB) ([]Product, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
