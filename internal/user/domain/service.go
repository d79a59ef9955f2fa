package domain

import (
	"context"
	"errors"
)

type SaveUserRequest struct {
	ID               string
	Username         string
	Password         string // empty keeps the existing hash on update
	Name             string
	Role             Role
	IsActive         bool
	LinkedCustomerID string
}

type Service interface {
	// Login authenticates against the whitelist and the user table, stamps
	// last_login, and records the session.
	Login(ctx context.Context, username, password, clientIP, userAgent string) (User, error)

	Save(ctx context.Context, req SaveUserRequest) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidUsername    = errors.New("invalid_username")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrInvalidID          = errors.New("invalid_id")
	ErrPasswordRequired   = errors.New("password required for new user")
	ErrUserExists         = errors.New("username already taken")
	ErrNotFound           = errors.New("not_found")
)
