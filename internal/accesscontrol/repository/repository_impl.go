package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/chonx19/act-r/internal/accesscontrol/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertWhitelistEntry(ctx context.Context, db *gorm.DB, entry *domain.WhitelistEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) FindWhitelistEntryByIP(ctx context.Context, db *gorm.DB, ip string) (*domain.WhitelistEntry, error) {
	var entry domain.WhitelistEntry
	err := db.WithContext(ctx).
		Where("ip = ?", ip).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repo) ListWhitelist(ctx context.Context, db *gorm.DB) ([]domain.WhitelistEntry, error) {
	var entries []domain.WhitelistEntry
	err := db.WithContext(ctx).
		Order("added_at asc, id asc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repo) DeleteWhitelistEntry(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.WhitelistEntry{})
	return result.RowsAffected, result.Error
}

func (r *repo) InsertSession(ctx context.Context, db *gorm.DB, session *domain.ActiveSession) error {
	return db.WithContext(ctx).Create(session).Error
}

func (r *repo) ListSessions(ctx context.Context, db *gorm.DB) ([]domain.ActiveSession, error) {
	var sessions []domain.ActiveSession
	err := db.WithContext(ctx).
		Order("login_time desc, id desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *repo) TrimSessions(ctx context.Context, db *gorm.DB, keep int) error {
	var ids []snowflake.ID
	err := db.WithContext(ctx).
		Model(&domain.ActiveSession{}).
		Order("login_time desc, id desc").
		Offset(keep).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&domain.ActiveSession{}).Error
}
