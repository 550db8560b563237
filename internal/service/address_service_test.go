package service

import (
	"context"
	"errors"
	"testing"

	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"

	"gorm.io/gorm"
)

func newAddressService(t *testing.T, db *gorm.DB) *AddressService {
	t.Helper()
	return NewAddressService(repository.NewAddressRepository(db), NewStateService(repository.NewStateRepository(db)))
}

func createAddress(t *testing.T, svc *AddressService, userID uint, isDefault bool) *models.Address {
	t.Helper()
	address, err := svc.Create(context.Background(), CreateAddressInput{
		UserID:    userID,
		FullName:  "Maya Haddad",
		Phone:     "+971500000001",
		Address:   "Apt 12, Marina Walk",
		StateCode: "DXB",
		IsDefault: isDefault,
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	return address
}

func TestAddressFirstIsAlwaysDefault(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	first := createAddress(t, svc, 1, false)
	if !first.IsDefault {
		t.Fatalf("a user's first address must be the default even when not requested")
	}
}

func TestAddressAtMostOneDefault(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	first := createAddress(t, svc, 1, false)
	second := createAddress(t, svc, 1, true)
	if !second.IsDefault {
		t.Fatalf("requested default should be honored")
	}

	var reloaded models.Address
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first address failed: %v", err)
	}
	if reloaded.IsDefault {
		t.Fatalf("previous default must be unset")
	}

	var defaults int64
	if err := db.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", 1, true).Count(&defaults).Error; err != nil {
		t.Fatalf("count defaults failed: %v", err)
	}
	if defaults != 1 {
		t.Fatalf("want exactly one default address got %d", defaults)
	}
}

func TestAddressNonDefaultSecondKeepsFirstDefault(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	first := createAddress(t, svc, 1, false)
	second := createAddress(t, svc, 1, false)
	if second.IsDefault {
		t.Fatalf("second address should not become default unasked")
	}

	var reloaded models.Address
	if err := db.First(&reloaded, first.ID).Error; err != nil {
		t.Fatalf("reload first address failed: %v", err)
	}
	if !reloaded.IsDefault {
		t.Fatalf("first address should stay default")
	}
}

func TestAddressUnknownStateRejected(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	_, err := svc.Create(context.Background(), CreateAddressInput{
		UserID:    1,
		FullName:  "Maya Haddad",
		Phone:     "+971500000001",
		Address:   "Apt 12, Marina Walk",
		StateCode: "XYZ",
	})
	if !errors.Is(err, ErrStateRequired) {
		t.Fatalf("unknown state code want ErrStateRequired got %v", err)
	}
}

func TestAddressMissingFieldsRejected(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	_, err := svc.Create(context.Background(), CreateAddressInput{
		UserID:    1,
		FullName:  "  ",
		Phone:     "+971500000001",
		Address:   "Apt 12",
		StateCode: "DXB",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("blank full name want ErrValidationFailed got %v", err)
	}
}

func TestAddressDeleteIsSoft(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	address := createAddress(t, svc, 1, false)
	if err := svc.Delete(address.ID, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetByIDAndUser(address.ID, 1); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("deleted address should be gone from lookups, got %v", err)
	}

	// row survives for orders that reference it
	var count int64
	if err := db.Model(&models.Address{}).Where("id = ?", address.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("soft delete must keep the row, got %d", count)
	}
}

func TestAddressDeleteForeignUserRejected(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	address := createAddress(t, svc, 1, false)
	if err := svc.Delete(address.ID, 2); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("foreign user delete want ErrAddressNotFound got %v", err)
	}
}

func TestAddressListDefaultFirst(t *testing.T) {
	db := newTestDB(t)
	seedStates(t, db)
	svc := newAddressService(t, db)

	createAddress(t, svc, 1, false)
	createAddress(t, svc, 1, false)
	marked := createAddress(t, svc, 1, true)

	addresses, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(addresses) != 3 {
		t.Fatalf("want 3 addresses got %d", len(addresses))
	}
	if addresses[0].ID != marked.ID {
		t.Fatalf("default address should lead the list")
	}
}
