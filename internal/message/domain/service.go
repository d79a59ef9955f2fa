package domain

import (
	"context"
	"errors"
)

type SendRequest struct {
	SenderID   string
	SenderName string
	SenderRole string
	Subject    string
	Content    string
	Category   Category
}

type Service interface {
	Send(ctx context.Context, req SendRequest) (Message, error)
	// List returns messages newest first.
	List(ctx context.Context) ([]Message, error)
	MarkRead(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int64, error)
}

var (
	ErrInvalidSubject  = errors.New("invalid_subject")
	ErrInvalidCategory = errors.New("invalid_category")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
