package repository

import (
	"context"

	"github.com/chonx19/act-r/internal/docnumber/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Increment(ctx context.Context, db *gorm.DB, scope string) (int64, error) {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("value + 1")}),
	}).Create(&domain.DocumentSequence{Scope: scope, Value: 1}).Error
	if err != nil {
		return 0, err
	}

	var seq domain.DocumentSequence
	if err := db.WithContext(ctx).
		Where("scope = ?", scope).
		Take(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}

// QuoteNumbers reads the purchase_orders table by column name rather than
// importing the purchaseorder model, which would create an import cycle.
func (r *repo) QuoteNumbers(ctx context.Context, db *gorm.DB, prefix string) ([]string, error) {
	var numbers []string
	err := db.WithContext(ctx).
		Table("purchase_orders").
		Where("po_number LIKE ?", prefix+"%").
		Pluck("po_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}
