package server

import (
	"errors"
	"net/http"

	accessdomain "github.com/chonx19/act-r/internal/accesscontrol/domain"
	"github.com/chonx19/act-r/internal/backup"
	customerdomain "github.com/chonx19/act-r/internal/customer/domain"
	historydomain "github.com/chonx19/act-r/internal/history/domain"
	inventorydomain "github.com/chonx19/act-r/internal/inventory/domain"
	messagedomain "github.com/chonx19/act-r/internal/message/domain"
	productdomain "github.com/chonx19/act-r/internal/product/domain"
	purchaseorderdomain "github.com/chonx19/act-r/internal/purchaseorder/domain"
	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrMalformedBody reports a request body that failed to bind. Handlers
// use it instead of guessing which field-level validation the caller broke.
var ErrMalformedBody = errors.New("malformed request body")

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware converts errors attached to the context into a
// JSON error body with the matching status code. Handlers report failures
// with AbortWithError and never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var insufficient *inventorydomain.InsufficientStockError
	if errors.As(err, &insufficient) {
		return http.StatusConflict, errorPayload{Type: "insufficient_stock", Message: insufficient.Error()}
	}
	var duplicateIP *accessdomain.DuplicateIPError
	if errors.As(err, &duplicateIP) {
		return http.StatusConflict, errorPayload{Type: "duplicate_ip", Message: duplicateIP.Error()}
	}
	var notWhitelisted *accessdomain.NotWhitelistedError
	if errors.As(err, &notWhitelisted) {
		return http.StatusForbidden, errorPayload{Type: "not_whitelisted", Message: notWhitelisted.Error()}
	}

	switch {
	case errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{Type: "invalid_credentials", Message: "invalid username or password"}
	case errors.Is(err, userdomain.ErrAccountDisabled):
		return http.StatusForbidden, errorPayload{Type: "account_disabled", Message: err.Error()}
	case errors.Is(err, userdomain.ErrUserExists):
		return http.StatusConflict, errorPayload{Type: "conflict", Message: err.Error()}
	case isNotFound(err):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "resource not found"}
	case isBadRequest(err):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal server error"}
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		gorm.ErrRecordNotFound,
		productdomain.ErrNotFound,
		customerdomain.ErrNotFound,
		purchaseorderdomain.ErrNotFound,
		messagedomain.ErrNotFound,
		accessdomain.ErrNotFound,
		userdomain.ErrNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isBadRequest(err error) bool {
	for _, target := range []error{
		ErrMalformedBody,
		inventorydomain.ErrInvalidType,
		inventorydomain.ErrInvalidQuantity,
		inventorydomain.ErrInvalidProduct,
		productdomain.ErrInvalidName,
		productdomain.ErrInvalidID,
		customerdomain.ErrInvalidCompanyName,
		customerdomain.ErrInvalidID,
		purchaseorderdomain.ErrInvalidTitle,
		purchaseorderdomain.ErrInvalidCustomerName,
		purchaseorderdomain.ErrInvalidStatus,
		purchaseorderdomain.ErrInvalidID,
		historydomain.ErrInvalidCustomer,
		historydomain.ErrInvalidOrder,
		historydomain.ErrMalformedImport,
		historydomain.ErrEmptyImport,
		messagedomain.ErrInvalidSubject,
		messagedomain.ErrInvalidCategory,
		messagedomain.ErrInvalidID,
		accessdomain.ErrInvalidIP,
		accessdomain.ErrInvalidID,
		userdomain.ErrInvalidUsername,
		userdomain.ErrInvalidRole,
		userdomain.ErrInvalidID,
		userdomain.ErrPasswordRequired,
		backup.ErrMalformedPayload,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
