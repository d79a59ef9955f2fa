package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/purchaseorder/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Save(ctx context.Context, db *gorm.DB, po *domain.PurchaseOrder) error {
	return db.WithContext(ctx).Save(po).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&po).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.PurchaseOrder, error) {
	var orders []domain.PurchaseOrder
	err := db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.PurchaseOrder{}).Error
}

func (r *repo) DeleteExpired(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("status = ? AND deleted_at IS NOT NULL AND deleted_at < ?", domain.StatusCancelled, cutoff).
		Delete(&domain.PurchaseOrder{})
	return result.RowsAffected, result.Error
}
