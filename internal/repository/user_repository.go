package repository

import (
	"errors"

	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// UserRepository storefront user record data access
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetByAccountID(accountID uint) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

// GormUserRepository GORM implementation
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the user repository
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID fetches a user record
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByAccountID fetches the user record provisioned for an account.
// Returns (nil, nil) while provisioning has not landed yet.
func (r *GormUserRepository) GetByAccountID(accountID uint) (*models.User, error) {
	var user models.User
	if err := r.db.Where("account_id = ?", accountID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a user record
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update saves a user record
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}
