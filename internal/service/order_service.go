package service

import (
	"context"

	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"
)

// OrderService order lookup for the checkout and confirmation pages
type OrderService struct {
	orderRepo      repository.OrderRepository
	addressService *AddressService
	stateService   *StateService
}

// NewOrderService creates the order service
func NewOrderService(orderRepo repository.OrderRepository, addressService *AddressService, stateService *StateService) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		addressService: addressService,
		stateService:   stateService,
	}
}

// GetByCode loads an order by its public code. A non-zero userID
// scopes the lookup to that owner.
func (s *OrderService) GetByCode(code string, userID uint) (*models.Order, error) {
	var order *models.Order
	var err error
	if userID != 0 {
		order, err = s.orderRepo.GetByCodeAndUser(code, userID)
	} else {
		order, err = s.orderRepo.GetByCode(code)
	}
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// CheckoutPage everything the checkout page needs in one load
type CheckoutPage struct {
	Order     *models.Order    `json:"order"`
	Addresses []models.Address `json:"addresses"`
	States    []models.State   `json:"states"`
}

// GetCheckoutPage loads the anchoring order plus the user's saved
// addresses and the selectable regions. Only draft and pending orders
// can anchor a checkout page.
func (s *OrderService) GetCheckoutPage(ctx context.Context, code string, userID uint) (*CheckoutPage, error) {
	order, err := s.GetByCode(code, userID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusDraft && order.Status != models.OrderStatusPending {
		return nil, ErrNotFound
	}

	var addresses []models.Address
	if userID != 0 {
		addresses, err = s.addressService.ListByUser(userID)
		if err != nil {
			return nil, err
		}
	}
	states, err := s.stateService.List(ctx)
	if err != nil {
		return nil, err
	}
	return &CheckoutPage{
		Order:     order,
		Addresses: addresses,
		States:    states,
	}, nil
}

// ListByUser lists a user's orders
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrValidationFailed
	}
	return s.orderRepo.ListByUser(filter)
}
