package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleUser     Role = "User"
	RoleCustomer Role = "Customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleCustomer:
		return true
	default:
		return false
	}
}

type User struct {
	ID           snowflake.ID `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Name         string       `json:"name"`
	Role         Role         `gorm:"not null" json:"role"`
	// No column default here: gorm drops zero-valued fields carrying a
	// default tag on insert, which would silently activate a user created
	// with IsActive false. Callers always set the field explicitly.
	IsActive  bool       `gorm:"not null" json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	// LinkedCustomerID ties a customer-role login to its directory entry.
	LinkedCustomerID snowflake.ID `json:"linked_customer_id,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}
