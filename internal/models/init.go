package models

import (
	"github.com/attarah-next/internal/logger"
)

// defaultStates the seven emirates; seeded when the states table is empty.
var defaultStates = []State{
	{Code: "AUH", CountryCode: "AE", NameEn: "Abu Dhabi", NameAr: "أبوظبي", SortOrder: 1},
	{Code: "DXB", CountryCode: "AE", NameEn: "Dubai", NameAr: "دبي", SortOrder: 2},
	{Code: "SHJ", CountryCode: "AE", NameEn: "Sharjah", NameAr: "الشارقة", SortOrder: 3},
	{Code: "AJM", CountryCode: "AE", NameEn: "Ajman", NameAr: "عجمان", SortOrder: 4},
	{Code: "UAQ", CountryCode: "AE", NameEn: "Umm Al Quwain", NameAr: "أم القيوين", SortOrder: 5},
	{Code: "RAK", CountryCode: "AE", NameEn: "Ras Al Khaimah", NameAr: "رأس الخيمة", SortOrder: 6},
	{Code: "FUJ", CountryCode: "AE", NameEn: "Fujairah", NameAr: "الفجيرة", SortOrder: 7},
}

// InitDefaultStates seeds the shippable regions on first boot
func InitDefaultStates() error {
	var count int64
	DB.Model(&State{}).Count(&count)
	if count > 0 {
		return nil
	}

	if err := DB.Create(&defaultStates).Error; err != nil {
		return err
	}
	logger.Infow("default_states_seeded", "count", len(defaultStates))
	return nil
}
