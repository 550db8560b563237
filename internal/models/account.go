package models

import (
	"time"

	"gorm.io/gorm"
)

// Account authentication identity. The storefront user record is
// provisioned asynchronously from this row (see User).
type Account struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string         `gorm:"type:varchar(100)" json:"last_name"`
	Phone        string         `gorm:"type:varchar(50)" json:"phone"`
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"` // bump to invalidate issued tokens
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName table name
func (Account) TableName() string {
	return "accounts"
}
