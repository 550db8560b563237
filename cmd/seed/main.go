package main

import (
	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	if err := models.InitDefaultStates(); err != nil {
		stdLog.Fatalf("failed to seed states: %v", err)
	}

	var categoryCount int64
	if err := models.DB.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		stdLog.Fatalf("failed to count categories: %v", err)
	}
	if categoryCount > 0 {
		stdLog.Println("catalog already seeded, nothing to do")
		return
	}

	categories := []models.Category{
		{NameEn: "Oriental", NameAr: "شرقي", Slug: "oriental", SlugAr: "شرقي", SortOrder: 30},
		{NameEn: "Floral", NameAr: "زهري", Slug: "floral", SlugAr: "زهري", SortOrder: 20},
		{NameEn: "Woody", NameAr: "خشبي", Slug: "woody", SlugAr: "خشبي", SortOrder: 10},
	}
	for i := range categories {
		if err := models.DB.Create(&categories[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed category %s: %v", categories[i].Slug, err)
		}
	}

	price := func(value string) models.Money {
		d, err := decimal.NewFromString(value)
		if err != nil {
			stdLog.Fatalf("bad seed price %q: %v", value, err)
		}
		return models.NewMoneyFromDecimal(d)
	}
	oldPrice := func(value string) *models.Money {
		m := price(value)
		return &m
	}

	products := []models.Product{
		{
			CategoryID:    categories[0].ID,
			NameEn:        "Royal Oud",
			NameAr:        "العود الملكي",
			DescriptionEn: "Deep oud wrapped in amber and saffron.",
			DescriptionAr: "عود عميق ملفوف بالعنبر والزعفران.",
			Price:         price("350.00"),
			OldPrice:      oldPrice("420.00"),
			CurrencyCode:  "AED",
			Quantity:      25,
			RatingSum:     48,
			RatingCount:   10,
		},
		{
			CategoryID:    categories[0].ID,
			NameEn:        "Amber Nights",
			NameAr:        "ليالي العنبر",
			DescriptionEn: "Warm amber with a trace of incense.",
			DescriptionAr: "عنبر دافئ مع لمسة من البخور.",
			Price:         price("180.00"),
			CurrencyCode:  "AED",
			Quantity:      40,
			RatingSum:     27,
			RatingCount:   6,
		},
		{
			CategoryID:    categories[1].ID,
			NameEn:        "Rose of Taif",
			NameAr:        "وردة الطائف",
			DescriptionEn: "Taif rose over a soft musk base.",
			DescriptionAr: "ورد طائفي فوق قاعدة مسك ناعمة.",
			Price:         price("220.00"),
			CurrencyCode:  "AED",
			Quantity:      30,
			RatingSum:     45,
			RatingCount:   9,
		},
		{
			CategoryID:    categories[1].ID,
			NameEn:        "White Jasmine",
			NameAr:        "الياسمين الأبيض",
			DescriptionEn: "Fresh jasmine petals with citrus.",
			DescriptionAr: "بتلات ياسمين منعشة مع الحمضيات.",
			Price:         price("95.00"),
			CurrencyCode:  "AED",
			Quantity:      60,
			RatingSum:     12,
			RatingCount:   4,
		},
		{
			CategoryID:    categories[2].ID,
			NameEn:        "Sandal Mirage",
			NameAr:        "سراب الصندل",
			DescriptionEn: "Creamy sandalwood and dry cedar.",
			DescriptionAr: "خشب الصندل الكريمي والأرز الجاف.",
			Price:         price("140.00"),
			OldPrice:      oldPrice("175.00"),
			CurrencyCode:  "AED",
			Quantity:      35,
			RatingSum:     20,
			RatingCount:   5,
		},
	}
	for i := range products {
		if err := models.DB.Create(&products[i]).Error; err != nil {
			stdLog.Fatalf("failed to seed product %s: %v", products[i].NameEn, err)
		}
	}

	stdLog.Printf("seeded %d categories and %d products", len(categories), len(products))
}
