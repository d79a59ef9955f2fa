package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/chonx19/act-r/internal/docnumber/domain"
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
		log:  p.Log.Named("docnumber.service"),
		repo: p.Repo,
	}
}

func (s *Service) NextDocumentNumber(ctx context.Context, tx *gorm.DB, docType string, at time.Time) (string, error) {
	docType = strings.TrimSpace(docType)
	if docType == "" {
		return "", domain.ErrInvalidScope
	}
	if tx == nil {
		tx = s.db
	}

	prefix := domain.DocumentPrefix(docType, at)
	run, err := s.repo.Increment(ctx, tx, prefix)
	if err != nil {
		return "", err
	}
	return prefix + domain.FormatRun(run), nil
}

func (s *Service) NextQuoteNumber(ctx context.Context, customerCode string, at time.Time) (string, error) {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return "", domain.ErrInvalidScope
	}

	prefix := domain.QuotePrefix(at)
	existing, err := s.repo.QuoteNumbers(ctx, s.db, prefix)
	if err != nil {
		return "", err
	}

	var maxRun int64
	for _, number := range existing {
		if run, ok := parseRun(number, prefix); ok && run > maxRun {
			maxRun = run
		}
	}
	return prefix + domain.FormatRun(maxRun+1) + " " + customerCode, nil
}

// parseRun extracts NNN from "ACTYY-MM-NNN CODE". Quote numbers are
// user-editable, so anything unparseable is skipped rather than rejected.
func parseRun(number, prefix string) (int64, bool) {
	idPart := strings.SplitN(number, " ", 2)[0]
	raw := strings.TrimPrefix(idPart, prefix)
	if raw == idPart {
		return 0, false
	}
	run, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return run, true
}
