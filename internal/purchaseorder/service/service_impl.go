package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	docnumberdomain "github.com/chonx19/act-r/internal/docnumber/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	"github.com/chonx19/act-r/internal/observability/metrics"
	"github.com/chonx19/act-r/internal/purchaseorder/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Numbers   docnumberdomain.Service
	Customers customerdomain.Service
	History   historydomain.Service
	Metrics   *metrics.Metrics
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	numbers   docnumberdomain.Service
	customers customerdomain.Service
	history   historydomain.Service
	metrics   *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("purchaseorder.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		numbers:   p.Numbers,
		customers: p.Customers,
		history:   p.History,
		metrics:   p.Metrics,
	}
}

func (s *Service) Save(ctx context.Context, po domain.PurchaseOrder) (domain.PurchaseOrder, error) {
	po.Title = strings.TrimSpace(po.Title)
	if po.Title == "" {
		return domain.PurchaseOrder{}, domain.ErrInvalidTitle
	}
	po.CustomerName = strings.TrimSpace(po.CustomerName)
	if po.CustomerName == "" {
		return domain.PurchaseOrder{}, domain.ErrInvalidCustomerName
	}
	if po.Status == "" {
		po.Status = domain.StatusRFQ
	}
	if !po.Status.Valid() {
		return domain.PurchaseOrder{}, domain.ErrInvalidStatus
	}

	now := s.clock.Now()
	isNew := po.ID == 0
	if isNew {
		po.ID = s.genID.Generate()
		po.CreatedAt = now
	}
	po.UpdatedAt = now

	if isNew && strings.TrimSpace(po.PONumber) == "" {
		po.PONumber = s.assignQuoteNumber(ctx, po.CustomerName)
	}

	for i := range po.Items {
		po.Items[i].Amount = domain.LineAmount(po.Items[i])
	}
	totals := domain.ComputeTotals(po.Items, po.Discount)
	po.VAT = totals.VAT.InexactFloat64()
	po.TotalAmount = totals.GrandTotal.InexactFloat64()

	if err := s.repo.Save(ctx, s.db, &po); err != nil {
		return domain.PurchaseOrder{}, err
	}

	if err := s.history.SyncFromOrder(ctx, s.snapshot(po)); err != nil {
		return domain.PurchaseOrder{}, err
	}

	s.metrics.OrdersSaved.Inc()
	s.log.Info("purchase order saved",
		zap.String("po_number", po.PONumber),
		zap.String("status", string(po.Status)),
		zap.Bool("new", isNew),
	)
	return po, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.PurchaseOrder, error) {
	if !status.Valid() {
		return domain.PurchaseOrder{}, domain.ErrInvalidStatus
	}
	parsed, err := parseID(id)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}

	po, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	if po == nil {
		return domain.PurchaseOrder{}, domain.ErrNotFound
	}

	po.Status = status
	if status == domain.StatusCancelled {
		now := s.clock.Now()
		po.DeletedAt = &now
	} else {
		po.DeletedAt = nil
	}
	po.UpdatedAt = s.clock.Now()

	if err := s.repo.Save(ctx, s.db, po); err != nil {
		return domain.PurchaseOrder{}, err
	}
	return *po, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	// History rows for the order are kept; the quoted prices remain part
	// of the customer's record even after the job itself is gone.
	return s.repo.Delete(ctx, s.db, parsed)
}

func (s *Service) Get(ctx context.Context, id string) (domain.PurchaseOrder, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	po, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.PurchaseOrder{}, err
	}
	if po == nil {
		return domain.PurchaseOrder{}, domain.ErrNotFound
	}
	return *po, nil
}

func (s *Service) List(ctx context.Context) ([]domain.PurchaseOrder, error) {
	if _, err := s.PruneExpired(ctx); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, s.db)
}

func (s *Service) PruneExpired(ctx context.Context) (int64, error) {
	cutoff := s.clock.Now().AddDate(0, 0, -domain.RetentionDays)
	pruned, err := s.repo.DeleteExpired(ctx, s.db, cutoff)
	if err != nil {
		return 0, err
	}
	if pruned > 0 {
		s.metrics.OrdersPruned.Add(float64(pruned))
		s.log.Info("retention sweep", zap.Int64("pruned", pruned))
	}
	return pruned, nil
}

// assignQuoteNumber generates "ACTYY-MM-NNN CODE" for customers carrying
// a short code. Orders for unknown customers fall back to DRAFT, same as
// leaving the field blank on the board.
func (s *Service) assignQuoteNumber(ctx context.Context, customerName string) string {
	now := s.clock.Now()

	customer, err := s.customers.FindByName(ctx, customerName)
	if err != nil {
		if !errors.Is(err, customerdomain.ErrNotFound) {
			s.log.Warn("customer lookup failed", zap.Error(err))
		}
		return "DRAFT"
	}
	if strings.TrimSpace(customer.Code) == "" {
		return "DRAFT"
	}

	number, err := s.numbers.NextQuoteNumber(ctx, customer.Code, now)
	if err != nil {
		s.log.Warn("quote number generation failed", zap.Error(err))
		return "DRAFT"
	}
	return number
}

func (s *Service) snapshot(po domain.PurchaseOrder) historydomain.OrderSnapshot {
	quotedAt := s.clock.Now()
	if po.StartDate != nil {
		quotedAt = *po.StartDate
	}

	items := make([]historydomain.OrderItem, 0, len(po.Items))
	for _, item := range po.Items {
		items = append(items, historydomain.OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
			Active:    item.IsActive,
		})
	}

	return historydomain.OrderSnapshot{
		OrderID:      po.ID,
		OrderNumber:  po.PONumber,
		CustomerName: po.CustomerName,
		QuotedAt:     quotedAt,
		Items:        items,
	}
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
