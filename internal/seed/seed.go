package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	userdomain "github.com/chonx19/act-r/internal/user/domain"
	"github.com/chonx19/act-r/internal/user/password"
	"gorm.io/gorm"
)

type defaultUser struct {
	Username string
	Password string
	Name     string
	Role     userdomain.Role
}

// The out-of-the-box logins. Passwords match the usernames; operators are
// expected to rotate them right after first login.
var defaultUsers = []defaultUser{
	{Username: "chana19", Password: "chana19", Name: "Admin (Chana)", Role: userdomain.RoleAdmin},
	{Username: "employee", Password: "employee", Name: "Employee", Role: userdomain.RoleUser},
	{Username: "customer", Password: "customer", Name: "Customer User", Role: userdomain.RoleCustomer},
}

// EnsureDefaultUsers seeds the three stock logins when the user table is
// empty. A table with any row at all is left untouched.
func EnsureDefaultUsers(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userdomain.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, def := range defaultUsers {
			hashed, err := password.Hash(def.Password)
			if err != nil {
				return err
			}
			user := userdomain.User{
				ID:           node.Generate(),
				Username:     def.Username,
				PasswordHash: hashed,
				Name:         def.Name,
				Role:         def.Role,
				IsActive:     true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
