package service

import (
	"errors"
	"testing"

	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"

	"gorm.io/gorm"
)

func newCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
}

func TestCartUpsertReplacesQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	category := seedCategory(t, db, "Floral", "floral", "زهري")
	product := seedProduct(t, db, models.Product{CategoryID: category.ID, NameEn: "Rose", NameAr: "ورد", Price: money(t, "10.00"), Quantity: 5})

	if err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 5}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	items, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want one cart line got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("upsert should replace the quantity, got %d", items[0].Quantity)
	}
	if got := items[0].UnitPrice.String(); got != "10.00" {
		t.Fatalf("cart line should carry the price snapshot, got %s", got)
	}
}

func TestCartRejectsMissingProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: 99, Quantity: 1})
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
}

func TestCartRejectsInvalidQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)

	err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: 1, Quantity: 0})
	if !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("want ErrInvalidCartItem got %v", err)
	}
}

func TestCartListPrunesDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	category := seedCategory(t, db, "Floral", "floral", "زهري")
	keep := seedProduct(t, db, models.Product{CategoryID: category.ID, NameEn: "Rose", NameAr: "ورد", Price: money(t, "10.00"), Quantity: 5})
	gone := seedProduct(t, db, models.Product{CategoryID: category.ID, NameEn: "Oud", NameAr: "عود", Price: money(t, "20.00"), Quantity: 5})

	if err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: keep.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: gone.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := db.Model(&models.Product{}).Where("id = ?", gone.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	items, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("deleted product line should be pruned, got %d lines", len(items))
	}
	if items[0].ProductID != keep.ID {
		t.Fatalf("surviving line should be the live product")
	}
}

func TestCartClear(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(t, db)
	category := seedCategory(t, db, "Floral", "floral", "زهري")
	product := seedProduct(t, db, models.Product{CategoryID: category.ID, NameEn: "Rose", NameAr: "ورد", Price: money(t, "10.00"), Quantity: 5})

	if err := svc.UpsertItem(UpsertCartItemInput{UserID: 1, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("cart should be empty after clear, got %d", len(items))
	}
}
