package service

import (
	"context"
	"sort"

	"github.com/chonx19/act-r/internal/dashboard/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("dashboard.service"),
		repo: p.Repo,
	}
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	var err error

	if stats.TotalProducts, err = s.repo.CountProducts(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	if stats.TotalStock, err = s.repo.SumStock(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	if stats.TotalValue, err = s.repo.SumStockValue(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	if stats.LowStockCount, err = s.repo.CountLowStock(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	if stats.ActiveJobs, err = s.repo.CountActiveOrders(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	if stats.UnreadMessages, err = s.repo.CountUnreadMessages(ctx, s.db); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}

func (s *Service) MonthlyJobs(ctx context.Context) ([]domain.MonthlyJobs, error) {
	samples, err := s.repo.OrderSamples(ctx, s.db)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month int
	}
	buckets := make(map[key]*domain.MonthlyJobs)
	for _, sample := range samples {
		at := sample.CreatedAt
		if sample.StartDate != nil && !sample.StartDate.IsZero() {
			at = *sample.StartDate
		}
		k := key{year: at.Year(), month: int(at.Month())}
		bucket, ok := buckets[k]
		if !ok {
			bucket = &domain.MonthlyJobs{Year: k.year, Month: at.Month()}
			buckets[k] = bucket
		}
		bucket.Count++
		bucket.Total += sample.TotalAmount
	}

	out := make([]domain.MonthlyJobs, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})

	if len(out) > domain.MonthlyBucketLimit {
		out = out[len(out)-domain.MonthlyBucketLimit:]
	}
	return out, nil
}
