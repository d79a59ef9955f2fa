package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Save(ctx context.Context, db *gorm.DB, user *User) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	List(ctx context.Context, db *gorm.DB) ([]User, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
