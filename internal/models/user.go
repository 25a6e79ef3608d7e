package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account holder. The Password field carries a bcrypt
// hash, never the raw credential.
type User struct {
	DefaultModel
	Phone    string          `json:"phone" gorm:"uniqueIndex"`          // Unique phone number the user registered with
	Username string          `json:"username"`
	Password string          `json:"-"`
	Role     string          `json:"role"`                              // Either "user" or "admin"
	Balance  decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)"` // Never negative
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BeforeSave trims whitespace from string fields and defaults the role.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if err = u.DefaultModel.BeforeSave(tx); err != nil {
		return err
	}

	u.Phone = strings.TrimSpace(u.Phone)
	u.Username = strings.TrimSpace(u.Username)

	if u.Role == "" {
		u.Role = RoleUser
	}

	return nil
}
