package domain

import (
	"context"
	"errors"
	"fmt"
)

type RecordSessionRequest struct {
	UserID    string
	UserName  string
	IPAddress string
	UserAgent string
}

type Service interface {
	// Allowed reports whether ip may log in. An empty whitelist admits
	// everyone; the 0.0.0.0 entry acts as a wildcard.
	Allowed(ctx context.Context, ip string) (bool, error)

	AddToWhitelist(ctx context.Context, ip, description, addedBy string) (WhitelistEntry, error)
	RemoveFromWhitelist(ctx context.Context, id string) error
	Whitelist(ctx context.Context) ([]WhitelistEntry, error)

	// RecordSession logs a login and trims the trail to SessionLogLimit.
	RecordSession(ctx context.Context, req RecordSessionRequest) error
	Sessions(ctx context.Context) ([]ActiveSession, error)
}

var (
	ErrInvalidIP = errors.New("invalid_ip")
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)

// DuplicateIPError rejects whitelisting an address twice.
type DuplicateIPError struct {
	IP string
}

func (e *DuplicateIPError) Error() string {
	return fmt.Sprintf("IP address %s already exists in whitelist", e.IP)
}

// NotWhitelistedError denies a login from outside the whitelist.
type NotWhitelistedError struct {
	IP string
}

func (e *NotWhitelistedError) Error() string {
	return fmt.Sprintf("access denied: IP %s is not whitelisted", e.IP)
}
