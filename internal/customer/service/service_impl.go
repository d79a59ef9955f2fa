package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/customer/domain"
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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Save(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	customer.CompanyName = strings.TrimSpace(customer.CompanyName)
	if customer.CompanyName == "" {
		return domain.Customer{}, domain.ErrInvalidCompanyName
	}
	customer.Code = strings.ToUpper(strings.TrimSpace(customer.Code))

	now := s.clock.Now()
	if customer.ID == 0 {
		customer.ID = s.genID.Generate()
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	if err := s.repo.Save(ctx, s.db, &customer); err != nil {
		return domain.Customer{}, err
	}
	return customer, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Customer, error) {
	parsed, err := parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}
	customer, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}

func (s *Service) FindByName(ctx context.Context, companyName string) (domain.Customer, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return domain.Customer{}, domain.ErrInvalidCompanyName
	}
	customer, err := s.repo.FindByName(ctx, s.db, companyName)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *customer, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx, s.db)
}

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
