package models

import (
	"time"
)

// User storefront user record. Provisioned asynchronously after
// account registration; orders and addresses reference this row.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AccountID uint      `gorm:"uniqueIndex;not null" json:"account_id"`
	Email     string    `gorm:"index;not null" json:"email"`
	FirstName string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string    `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName table name
func (User) TableName() string {
	return "users"
}
