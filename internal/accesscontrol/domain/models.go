package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// WildcardIP in the whitelist admits any client.
const WildcardIP = "0.0.0.0"

// SessionLogLimit caps the login audit trail at the most recent entries.
const SessionLogLimit = 50

type WhitelistEntry struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	IP          string       `gorm:"uniqueIndex;not null" json:"ip"`
	Description string       `json:"description,omitempty"`
	AddedBy     string       `json:"added_by"`
	AddedAt     time.Time    `gorm:"not null" json:"added_at"`
}

type ActiveSession struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	UserID    snowflake.ID `gorm:"index" json:"user_id"`
	UserName  string       `json:"user_name"`
	IPAddress string       `json:"ip_address"`
	UserAgent string       `json:"user_agent,omitempty"`
	LoginTime time.Time    `gorm:"not null;index" json:"login_time"`
}
