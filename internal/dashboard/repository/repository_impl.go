package repository

import (
	"context"

	"github.com/chonx19/act-r/internal/dashboard/domain"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CountProducts(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&productdomain.Product{}).
		Count(&count).Error
	return count, err
}

func (r *repo) SumStock(ctx context.Context, db *gorm.DB) (int64, error) {
	var total *int64
	err := db.WithContext(ctx).
		Model(&inventorydomain.StockLevel{}).
		Select("SUM(quantity)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *repo) SumStockValue(ctx context.Context, db *gorm.DB) (float64, error) {
	var total *float64
	err := db.WithContext(ctx).
		Table("stock_levels").
		Select("SUM(stock_levels.quantity * products.cost)").
		Joins("JOIN products ON products.id = stock_levels.product_id").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *repo) CountLowStock(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Table("products").
		Joins("LEFT JOIN stock_levels ON stock_levels.product_id = products.id").
		Where("COALESCE(stock_levels.quantity, 0) <= products.min_stock_level").
		Count(&count).Error
	return count, err
}

func (r *repo) CountActiveOrders(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&purchaseorderdomain.PurchaseOrder{}).
		Where("status <> ?", purchaseorderdomain.StatusDone).
		Count(&count).Error
	return count, err
}

func (r *repo) CountUnreadMessages(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&messagedomain.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}

func (r *repo) OrderSamples(ctx context.Context, db *gorm.DB) ([]domain.OrderSample, error) {
	var samples []domain.OrderSample
	err := db.WithContext(ctx).
		Model(&purchaseorderdomain.PurchaseOrder{}).
		Select("start_date", "created_at", "total_amount").
		Scan(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}
