package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/history/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) DeleteByOrder(ctx context.Context, db *gorm.DB, orderID snowflake.ID) error {
	return db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&domain.CustomerProduct{}).Error
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rows []domain.CustomerProduct) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&rows).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.CustomerProduct, error) {
	var rows []domain.CustomerProduct
	err := db.WithContext(ctx).
		Order("last_quoted_date desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) ListByCustomer(ctx context.Context, db *gorm.DB, customerName string) ([]domain.CustomerProduct, error) {
	var rows []domain.CustomerProduct
	err := db.WithContext(ctx).
		Where("customer_name = ?", customerName).
		Order("last_quoted_date desc, id desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
