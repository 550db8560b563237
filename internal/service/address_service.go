package service

import (
	"context"
	"strings"
	"time"

	"github.com/attarah-next/internal/constants"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"

	"gorm.io/gorm"
)

// CreateAddressInput new address input
type CreateAddressInput struct {
	UserID    uint
	FullName  string
	Phone     string
	Address   string
	StateCode string
	Notes     string
	IsDefault bool
}

// AddressService shipping address management
type AddressService struct {
	repo         repository.AddressRepository
	stateService *StateService
}

// NewAddressService creates the address service
func NewAddressService(repo repository.AddressRepository, stateService *StateService) *AddressService {
	return &AddressService{
		repo:         repo,
		stateService: stateService,
	}
}

// ListByUser lists live addresses, default first
func (s *AddressService) ListByUser(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrValidationFailed
	}
	return s.repo.ListByUser(userID)
}

// GetByIDAndUser fetches one address scoped to its owner
func (s *AddressService) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	address, err := s.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return address, nil
}

// Create validates and inserts an address. A user's first address is
// always the default; a new default unsets the previous one so at most
// one remains.
func (s *AddressService) Create(ctx context.Context, input CreateAddressInput) (*models.Address, error) {
	if input.UserID == 0 {
		return nil, ErrValidationFailed
	}
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.Phone)
	line := strings.TrimSpace(input.Address)
	stateCode := strings.TrimSpace(input.StateCode)
	if fullName == "" || phone == "" || line == "" {
		return nil, ErrValidationFailed
	}
	if stateCode == "" {
		return nil, ErrStateRequired
	}
	if s.stateService != nil {
		valid, err := s.stateService.IsValidCode(ctx, stateCode)
		if err != nil {
			return nil, err
		}
		if !valid {
			return nil, ErrStateRequired
		}
	}

	count, err := s.repo.CountByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	isDefault := input.IsDefault || count == 0

	now := time.Now()
	address := &models.Address{
		UserID:      input.UserID,
		FullName:    fullName,
		Phone:       phone,
		Address:     line,
		StateCode:   stateCode,
		Notes:       strings.TrimSpace(input.Notes),
		IsDefault:   isDefault,
		CountryCode: constants.CountryCodeUAE,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if isDefault {
			if err := repo.UnsetDefaults(input.UserID); err != nil {
				return err
			}
		}
		return repo.Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Delete soft-deletes an address
func (s *AddressService) Delete(id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrValidationFailed
	}
	address, err := s.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if address == nil {
		return ErrAddressNotFound
	}
	return s.repo.SoftDelete(id, userID)
}
