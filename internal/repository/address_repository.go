package repository

import (
	"errors"

	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// AddressRepository address data access
type AddressRepository interface {
	ListByUser(userID uint) ([]models.Address, error)
	GetByIDAndUser(id, userID uint) (*models.Address, error)
	CountByUser(userID uint) (int64, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	UnsetDefaults(userID uint) error
	SoftDelete(id, userID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) AddressRepository
}

// GormAddressRepository GORM implementation
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates the address repository
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx binds a transaction
func (r *GormAddressRepository) WithTx(tx *gorm.DB) AddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// Transaction runs fn in a transaction
func (r *GormAddressRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// ListByUser live addresses, default first then most recent
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser fetches one live address scoped to its owner
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", id, userID, false).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// CountByUser counts live addresses
func (r *GormAddressRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Address{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts an address
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// Update saves an address
func (r *GormAddressRepository) Update(address *models.Address) error {
	return r.db.Save(address).Error
}

// UnsetDefaults clears the default flag on every address of the user.
// Callers set the new default afterwards so at most one remains.
func (r *GormAddressRepository) UnsetDefaults(userID uint) error {
	return r.db.Model(&models.Address{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

// SoftDelete flags an address as deleted
func (r *GormAddressRepository) SoftDelete(id, userID uint) error {
	return r.db.Model(&models.Address{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_deleted", true).Error
}
