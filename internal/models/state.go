package models

// State shippable region (UAE emirates)
type State struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Code        string `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	CountryCode string `gorm:"type:varchar(5);not null;index;default:'AE'" json:"country_code"`
	NameEn      string `gorm:"type:varchar(100);not null" json:"name_en"`
	NameAr      string `gorm:"type:varchar(100);not null" json:"name_ar"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
}

// TableName table name
func (State) TableName() string {
	return "states"
}
