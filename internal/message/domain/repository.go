package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, msg *Message) error
	List(ctx context.Context, db *gorm.DB) ([]Message, error)
	MarkRead(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)
	CountUnread(ctx context.Context, db *gorm.DB) (int64, error)
}
