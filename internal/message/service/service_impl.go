package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/internal/message/domain"
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
	Metrics *metrics.Metrics
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	clock   clock.Clock
	repo    domain.Repository
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("message.service"),
		genID:   p.GenID,
		clock:   p.Clock,
		repo:    p.Repo,
		metrics: p.Metrics,
	}
}

func (s *Service) Send(ctx context.Context, req domain.SendRequest) (domain.Message, error) {
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return domain.Message{}, domain.ErrInvalidSubject
	}
	category := req.Category
	if category == "" {
		category = domain.CategoryGeneral
	}
	if !category.Valid() {
		return domain.Message{}, domain.ErrInvalidCategory
	}
	senderID, _ := snowflake.ParseString(strings.TrimSpace(req.SenderID))

	msg := domain.Message{
		ID:         s.genID.Generate(),
		SenderID:   senderID,
		SenderName: strings.TrimSpace(req.SenderName),
		SenderRole: strings.TrimSpace(req.SenderRole),
		Subject:    subject,
		Content:    req.Content,
		Category:   category,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.repo.Insert(ctx, s.db, &msg); err != nil {
		return domain.Message{}, err
	}

	s.metrics.MessagesSent.Inc()
	return msg, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Message, error) {
	return s.repo.List(ctx, s.db)
}

func (s *Service) MarkRead(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.ErrInvalidID
	}
	updated, err := s.repo.MarkRead(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if updated == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx, s.db)
}
