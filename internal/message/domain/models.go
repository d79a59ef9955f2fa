package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Category string

const (
	CategoryInquiry          Category = "INQUIRY"
	CategoryQuotationRequest Category = "QUOTATION_REQUEST"
	CategoryGeneral          Category = "GENERAL"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryInquiry, CategoryQuotationRequest, CategoryGeneral:
		return true
	default:
		return false
	}
}

// Message is an append-only note between customers and staff.
type Message struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	SenderID   snowflake.ID `gorm:"index" json:"sender_id"`
	SenderName string       `json:"sender_name"`
	SenderRole string       `json:"sender_role"`
	Subject    string       `gorm:"not null" json:"subject"`
	Content    string       `json:"content"`
	Category   Category     `gorm:"not null" json:"category"`
	IsRead     bool         `gorm:"not null;default:false" json:"is_read"`
	CreatedAt  time.Time    `gorm:"not null;index" json:"created_at"`
}
