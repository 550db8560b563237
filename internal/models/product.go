package models

import (
	"time"
)

// Product perfume listing
type Product struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	NameEn        string    `gorm:"type:varchar(300);not null;index" json:"name_en"` // English name
	NameAr        string    `gorm:"type:varchar(300);not null;index" json:"name_ar"` // Arabic name
	DescriptionEn string    `gorm:"type:text" json:"description_en"`
	DescriptionAr string    `gorm:"type:text" json:"description_ar"`
	Price         Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OldPrice      *Money    `gorm:"type:decimal(20,2)" json:"old_price,omitempty"` // pre-discount price, nil when never discounted
	CurrencyCode  string    `gorm:"type:varchar(10);not null;default:'USD'" json:"currency_code"`
	Quantity      int       `gorm:"not null;default:0" json:"quantity"` // stock on hand
	ImageURL      string    `gorm:"type:varchar(500)" json:"image_url"`
	RatingSum     int64     `gorm:"not null;default:0;index" json:"rating_sum"` // sum of submitted ratings
	RatingCount   int64     `gorm:"not null;default:0" json:"rating_count"`
	IsDeleted     bool      `gorm:"not null;default:false;index" json:"-"` // listing-level soft delete flag
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName table name
func (Product) TableName() string {
	return "products"
}
