package service

import (
	"time"

	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"
)

// CartItemDetail cart line with its price snapshot for responses
type CartItemDetail struct {
	ProductID    uint            `json:"product_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    models.Money    `json:"unit_price"`
	OldPrice     *models.Money   `json:"old_price,omitempty"`
	CurrencyCode string          `json:"currency_code"`
	Product      *models.Product `json:"product"`
}

// UpsertCartItemInput cart update input
type UpsertCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService server-side cart for signed-in users
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser returns the user's cart. Lines whose product has gone
// away are pruned rather than returned.
func (s *CartService) ListByUser(userID uint) ([]CartItemDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || product.IsDeleted {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}

		details = append(details, CartItemDetail{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPrice:    product.Price,
			OldPrice:     product.OldPrice,
			CurrencyCode: product.CurrencyCode,
			Product:      product,
		})
	}
	return details, nil
}

// UpsertItem adds or replaces a cart line
func (s *CartService) UpsertItem(input UpsertCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity <= 0 {
		return ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil || product.IsDeleted {
		return ErrProductNotAvailable
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.cartRepo.Upsert(item)
}

// RemoveItem removes one cart line
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear empties the cart, used after a successful checkout
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearByUser(userID)
}
