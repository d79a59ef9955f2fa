package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/inventory/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindLevel(ctx context.Context, db *gorm.DB, productID snowflake.ID) (*domain.StockLevel, error) {
	var level domain.StockLevel
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Take(&level).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *repo) SaveLevel(ctx context.Context, db *gorm.DB, level *domain.StockLevel) error {
	return db.WithContext(ctx).Save(level).Error
}

func (r *repo) ListLevels(ctx context.Context, db *gorm.DB) ([]domain.StockLevel, error) {
	var levels []domain.StockLevel
	err := db.WithContext(ctx).
		Order("product_id").
		Find(&levels).Error
	if err != nil {
		return nil, err
	}
	return levels, nil
}

func (r *repo) InsertTransaction(ctx context.Context, db *gorm.DB, tx *domain.StockTransaction) error {
	return db.WithContext(ctx).Create(tx).Error
}

func (r *repo) ListTransactions(ctx context.Context, db *gorm.DB) ([]domain.StockTransaction, error) {
	var transactions []domain.StockTransaction
	err := db.WithContext(ctx).
		Order("date desc, id desc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *repo) ListTransactionsByProduct(ctx context.Context, db *gorm.DB, productID snowflake.ID) ([]domain.StockTransaction, error) {
	var transactions []domain.StockTransaction
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("date asc, id asc").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
