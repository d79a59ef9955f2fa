package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type ContactPerson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Customer is the directory entry. Purchase orders copy the company name
// at save time instead of referencing it, so renames never rewrite history.
type Customer struct {
	ID          snowflake.ID                       `gorm:"primaryKey" json:"id"`
	CompanyName string                             `gorm:"not null;index" json:"company_name"`
	Code        string                             `gorm:"index" json:"code"`
	Contacts    datatypes.JSONSlice[ContactPerson] `json:"contacts"`
	Address     string                             `json:"address,omitempty"`
	TaxID       string                             `json:"tax_id,omitempty"`
	Fax         string                             `json:"fax,omitempty"`
	CreatedAt   time.Time                          `json:"created_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}
