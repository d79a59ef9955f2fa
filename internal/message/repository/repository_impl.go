package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/message/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, msg *domain.Message) error {
	return db.WithContext(ctx).Create(msg).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Message, error) {
	var messages []domain.Message
	err := db.WithContext(ctx).
		Order("created_at desc, id desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repo) MarkRead(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("id = ?", id).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

func (r *repo) CountUnread(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
