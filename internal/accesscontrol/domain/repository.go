package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertWhitelistEntry(ctx context.Context, db *gorm.DB, entry *WhitelistEntry) error
	FindWhitelistEntryByIP(ctx context.Context, db *gorm.DB, ip string) (*WhitelistEntry, error)
	ListWhitelist(ctx context.Context, db *gorm.DB) ([]WhitelistEntry, error)
	DeleteWhitelistEntry(ctx context.Context, db *gorm.DB, id snowflake.ID) (int64, error)

	InsertSession(ctx context.Context, db *gorm.DB, session *ActiveSession) error
	ListSessions(ctx context.Context, db *gorm.DB) ([]ActiveSession, error)
	// TrimSessions drops everything but the keep most recent entries.
	TrimSessions(ctx context.Context, db *gorm.DB, keep int) error
}
