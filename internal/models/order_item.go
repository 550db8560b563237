package models

import (
	"time"
)

// OrderItem one order line; price and total are snapshots taken at
// assembly time and never recomputed from the product afterwards.
type OrderItem struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	ProductID  uint      `gorm:"index;not null" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`       // unit price snapshot
	TotalPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // quantity x unit price
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName table name
func (OrderItem) TableName() string {
	return "order_items"
}
