package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByName(ctx context.Context, db *gorm.DB, companyName string) (*Customer, error)
	List(ctx context.Context, db *gorm.DB) ([]Customer, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
