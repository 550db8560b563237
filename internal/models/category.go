package models

import (
	"time"

	"gorm.io/gorm"
)

// Category perfume category with a slug per storefront language
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	NameEn    string         `gorm:"type:varchar(200);not null" json:"name_en"` // English name
	NameAr    string         `gorm:"type:varchar(200);not null" json:"name_ar"` // Arabic name
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`          // English slug
	SlugAr    string         `gorm:"uniqueIndex;not null" json:"slug_ar"`       // Arabic slug
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName table name
func (Category) TableName() string {
	return "categories"
}
