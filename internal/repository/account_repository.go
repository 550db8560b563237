package repository

import (
	"errors"

	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// AccountRepository authentication account data access
type AccountRepository interface {
	GetByEmail(email string) (*models.Account, error)
	GetByID(id uint) (*models.Account, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
}

// GormAccountRepository GORM implementation
type GormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates the account repository
func NewAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// GetByEmail fetches an account by email
func (r *GormAccountRepository) GetByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// GetByID fetches an account
func (r *GormAccountRepository) GetByID(id uint) (*models.Account, error) {
	var account models.Account
	if err := r.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts an account
func (r *GormAccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

// Update saves an account
func (r *GormAccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}
