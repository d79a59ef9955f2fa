package service

import (
	"context"
	"net"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/clock"
	"github.com/chonx19/act-r/pkg/db"
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
		log:   p.Log.Named("accesscontrol.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Allowed(ctx context.Context, ip string) (bool, error) {
	entries, err := s.repo.ListWhitelist(ctx, s.db)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return true, nil
	}
	ip = strings.TrimSpace(ip)
	for _, entry := range entries {
		if entry.IP == ip || entry.IP == domain.WildcardIP {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) AddToWhitelist(ctx context.Context, ip, description, addedBy string) (domain.WhitelistEntry, error) {
	ip = strings.TrimSpace(ip)
	if net.ParseIP(ip) == nil {
		return domain.WhitelistEntry{}, domain.ErrInvalidIP
	}

	existing, err := s.repo.FindWhitelistEntryByIP(ctx, s.db, ip)
	if err != nil {
		return domain.WhitelistEntry{}, err
	}
	if existing != nil {
		return domain.WhitelistEntry{}, &domain.DuplicateIPError{IP: ip}
	}

	entry := domain.WhitelistEntry{
		ID:          s.genID.Generate(),
		IP:          ip,
		Description: strings.TrimSpace(description),
		AddedBy:     strings.TrimSpace(addedBy),
		AddedAt:     s.clock.Now(),
	}
	if err := s.repo.InsertWhitelistEntry(ctx, s.db, &entry); err != nil {
		// The unique index backs up the pre-check under concurrent adds.
		if db.IsDuplicateKeyErr(err) {
			return domain.WhitelistEntry{}, &domain.DuplicateIPError{IP: ip}
		}
		return domain.WhitelistEntry{}, err
	}
	return entry, nil
}

func (s *Service) RemoveFromWhitelist(ctx context.Context, id string) error {
	parsed, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil || parsed == 0 {
		return domain.ErrInvalidID
	}
	deleted, err := s.repo.DeleteWhitelistEntry(ctx, s.db, parsed)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Whitelist(ctx context.Context) ([]domain.WhitelistEntry, error) {
	return s.repo.ListWhitelist(ctx, s.db)
}

func (s *Service) RecordSession(ctx context.Context, req domain.RecordSessionRequest) error {
	userID, _ := snowflake.ParseString(strings.TrimSpace(req.UserID))
	session := domain.ActiveSession{
		ID:        s.genID.Generate(),
		UserID:    userID,
		UserName:  strings.TrimSpace(req.UserName),
		IPAddress: strings.TrimSpace(req.IPAddress),
		UserAgent: req.UserAgent,
		LoginTime: s.clock.Now(),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.InsertSession(ctx, tx, &session); err != nil {
			return err
		}
		return s.repo.TrimSessions(ctx, tx, domain.SessionLogLimit)
	})
}

func (s *Service) Sessions(ctx context.Context) ([]domain.ActiveSession, error) {
	return s.repo.ListSessions(ctx, s.db)
}
