package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	"github.com/chonx19/act-r/internal/inventory/domain"
	"github.com/chonx19/act-r/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Clock   clock.Clock
	Repo    domain.Repository
	Numbers docnumberdomain.Service
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	numbers docnumberdomain.Service
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("inventory.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		numbers: p.Numbers,
		metrics: p.Metrics,
	}
}

func (s *Service) RecordTransaction(ctx context.Context, req domain.RecordTransactionRequest) (domain.StockTransaction, error) {
	if !req.Type.Valid() {
		return domain.StockTransaction{}, domain.ErrInvalidType
	}
	if req.Quantity <= 0 {
		return domain.StockTransaction{}, domain.ErrInvalidQuantity
	}
	productID, err := parseID(req.ProductID)
	if err != nil {
		return domain.StockTransaction{}, domain.ErrInvalidProduct
	}
	userID, _ := parseID(req.UserID)

	now := s.clock.Now()
	var record domain.StockTransaction

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		level, err := s.repo.FindLevel(ctx, tx, productID)
		if err != nil {
			return err
		}
		if level == nil {
			level = &domain.StockLevel{ProductID: productID}
		}

		current := level.Quantity
		if req.Type == domain.TransactionOut {
			if current < req.Quantity {
				s.metrics.TransactionsRejected.Inc()
				return &domain.InsufficientStockError{Available: current}
			}
			current -= req.Quantity
		} else {
			current += req.Quantity
		}
		// Unreachable given the check above; kept as a last line of defense.
		if current < 0 {
			return domain.ErrNegativeStock
		}

		level.Quantity = current
		level.UpdatedAt = now
		if err := s.repo.SaveLevel(ctx, tx, level); err != nil {
			return err
		}

		docNumber, err := s.numbers.NextDocumentNumber(ctx, tx, string(req.Type), now)
		if err != nil {
			return err
		}

		record = domain.StockTransaction{
			ID:             s.genID.Generate(),
			DocumentNumber: docNumber,
			Date:           now,
			Type:           req.Type,
			ProductID:      productID,
			Quantity:       req.Quantity,
			UserID:         userID,
			Notes:          strings.TrimSpace(req.Notes),
		}
		return s.repo.InsertTransaction(ctx, tx, &record)
	})
	if err != nil {
		return domain.StockTransaction{}, err
	}

	s.metrics.TransactionsRecorded.WithLabelValues(string(req.Type)).Inc()
	s.log.Info("transaction recorded",
		zap.String("document_number", record.DocumentNumber),
		zap.String("type", string(record.Type)),
		zap.Int64("quantity", record.Quantity),
	)
	return record, nil
}

func (s *Service) StockLevel(ctx context.Context, productID string) (int64, error) {
	id, err := parseID(productID)
	if err != nil {
		return 0, domain.ErrInvalidProduct
	}
	level, err := s.repo.FindLevel(ctx, s.db, id)
	if err != nil {
		return 0, err
	}
	if level == nil {
		return 0, nil
	}
	return level.Quantity, nil
}

func (s *Service) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	return s.repo.ListLevels(ctx, s.db)
}

func (s *Service) Transactions(ctx context.Context) ([]domain.StockTransaction, error) {
	return s.repo.ListTransactions(ctx, s.db)
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
