package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/history/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("history.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) SyncFromOrder(ctx context.Context, snap domain.OrderSnapshot) error {
	if snap.OrderID == 0 {
		return domain.ErrInvalidOrder
	}

	quotedAt := snap.QuotedAt
	if quotedAt.IsZero() {
		quotedAt = s.clock.Now()
	}

	rows := make([]domain.CustomerProduct, 0, len(snap.Items))
	for _, item := range snap.Items {
		if !item.Active {
			continue
		}
		rows = append(rows, domain.CustomerProduct{
			ID:             s.genID.Generate(),
			CustomerName:   snap.CustomerName,
			ProductName:    item.Name,
			Price:          item.UnitPrice,
			Unit:           item.Unit,
			LastQuotedDate: quotedAt,
			OrderID:        snap.OrderID,
			OrderNumber:    snap.OrderNumber,
			Quantity:       item.Quantity,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteByOrder(ctx, tx, snap.OrderID); err != nil {
			return err
		}
		return s.repo.Insert(ctx, tx, rows)
	})
}

func (s *Service) Import(ctx context.Context, rows []domain.ImportRow) (int, error) {
	if len(rows) == 0 {
		return 0, domain.ErrEmptyImport
	}

	records := make([]domain.CustomerProduct, 0, len(rows))
	for i, row := range rows {
		record, err := s.buildImportRecord(row)
		if err != nil {
			return 0, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedImport, i+1, err)
		}
		records = append(records, record)
	}

	if err := s.repo.Insert(ctx, s.db, records); err != nil {
		return 0, err
	}
	s.log.Info("history rows imported", zap.Int("count", len(records)))
	return len(records), nil
}

func (s *Service) ImportXLSX(ctx context.Context, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return 0, domain.ErrMalformedImport
	}
	cells, err := f.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if len(cells) < 2 {
		return 0, domain.ErrEmptyImport
	}

	// First row is the header.
	rows := make([]domain.ImportRow, 0, len(cells)-1)
	for i, line := range cells[1:] {
		row, err := parseXLSXRow(line)
		if err != nil {
			return 0, fmt.Errorf("%w: row %d: %v", domain.ErrMalformedImport, i+2, err)
		}
		if row == nil {
			continue
		}
		rows = append(rows, *row)
	}

	return s.Import(ctx, rows)
}

func (s *Service) Search(ctx context.Context, customerName, query string) ([]domain.CustomerProduct, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, domain.ErrInvalidCustomer
	}

	rows, err := s.repo.ListByCustomer(ctx, s.db, customerName)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	seen := make(map[string]struct{}, len(rows))
	matches := make([]domain.CustomerProduct, 0, len(rows))
	// Rows arrive newest first, so the first hit per product wins.
	for _, row := range rows {
		if query != "" && !strings.Contains(strings.ToLower(row.ProductName), query) {
			continue
		}
		key := strings.ToLower(row.ProductName)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		matches = append(matches, row)
	}
	return matches, nil
}

func (s *Service) List(ctx context.Context) ([]domain.CustomerProduct, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) buildImportRecord(row domain.ImportRow) (domain.CustomerProduct, error) {
	customerName := strings.TrimSpace(row.CustomerName)
	productName := strings.TrimSpace(row.ProductName)
	if customerName == "" {
		return domain.CustomerProduct{}, fmt.Errorf("missing customer name")
	}
	if productName == "" {
		return domain.CustomerProduct{}, fmt.Errorf("missing product name")
	}

	quotedAt := s.clock.Now()
	if raw := strings.TrimSpace(row.QuotedDate); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.CustomerProduct{}, err
		}
		quotedAt = parsed
	}

	return domain.CustomerProduct{
		ID:             s.genID.Generate(),
		CustomerName:   customerName,
		ProductName:    productName,
		Price:          row.Price,
		Unit:           strings.TrimSpace(row.Unit),
		LastQuotedDate: quotedAt,
		OrderNumber:    strings.TrimSpace(row.OrderNumber),
		Quantity:       row.Quantity,
	}, nil
}

func parseXLSXRow(cells []string) (*domain.ImportRow, error) {
	get := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	row := domain.ImportRow{
		CustomerName: get(0),
		ProductName:  get(1),
		Unit:         get(3),
		QuotedDate:   get(5),
		OrderNumber:  get(6),
	}
	if row.CustomerName == "" && row.ProductName == "" {
		return nil, nil // blank line
	}

	if raw := get(2); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad price %q", raw)
		}
		row.Price = price
	}
	if raw := get(4); raw != "" {
		qty, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad quantity %q", raw)
		}
		row.Quantity = qty
	}
	return &row, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", raw)
}
