package models

import (
	"time"
)

// Order status values. Checkout always produces pending; draft is
// reserved for saved-but-unsubmitted carts.
const (
	OrderStatusDraft   = "draft"
	OrderStatusPending = "pending"
)

// Order assembled checkout result
type Order struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Code         string    `gorm:"uniqueIndex;not null" json:"code"` // human-readable order code
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	AddressID    uint      `gorm:"index;not null" json:"address_id"`
	Status       string    `gorm:"index;not null" json:"status"`
	Subtotal     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	TotalPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`
	CurrencyCode string    `gorm:"type:varchar(10);not null" json:"currency_code"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`

	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Address *Address    `gorm:"foreignKey:AddressID" json:"address,omitempty"`
}

// TableName table name
func (Order) TableName() string {
	return "orders"
}
