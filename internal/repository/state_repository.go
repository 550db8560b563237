package repository

import (
	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// StateRepository shippable region data access
type StateRepository interface {
	ListByCountry(countryCode string) ([]models.State, error)
}

// GormStateRepository GORM implementation
type GormStateRepository struct {
	db *gorm.DB
}

// NewStateRepository creates the state repository
func NewStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// ListByCountry lists regions for one country
func (r *GormStateRepository) ListByCountry(countryCode string) ([]models.State, error) {
	var states []models.State
	if err := r.db.
		Where("country_code = ?", countryCode).
		Order("sort_order ASC, id ASC").
		Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}
