package models

import (
	"time"
)

// Address shipping address; at most one default per user
type Address struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	FullName    string    `gorm:"type:varchar(200);not null" json:"full_name"`
	Phone       string    `gorm:"type:varchar(50);not null" json:"phone"`
	Address     string    `gorm:"type:varchar(500);not null" json:"address"`
	StateCode   string    `gorm:"type:varchar(20);not null" json:"state_code"` // emirate code
	Notes       string    `gorm:"type:varchar(500)" json:"notes"`
	IsDefault   bool      `gorm:"not null;default:false;index" json:"is_default"`
	CountryCode string    `gorm:"type:varchar(5);not null;default:'AE'" json:"country_code"`
	IsDeleted   bool      `gorm:"not null;default:false;index" json:"-"` // soft delete flag
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName table name
func (Address) TableName() string {
	return "addresses"
}
