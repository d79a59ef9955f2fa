package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/product/domain"
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
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.ProductName = strings.TrimSpace(product.ProductName)
	if product.ProductName == "" {
		return domain.Product{}, domain.ErrInvalidName
	}
	product.ProductCode = strings.TrimSpace(product.ProductCode)

	now := s.clock.Now()
	if product.ID == 0 {
		product.ID = s.genID.Generate()
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if err := s.repo.Save(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Product{}, err
	}
	product, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx, s.db)
}

// Delete removes the catalog entry only. Ledger entries and order lines
// keep their copies of the product data.
func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, parsed)
}

func parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
