package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/constants"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/repository"

	"github.com/shopspring/decimal"
)

const orderCodeAttempts = 3

// CheckoutCartItem one cart line submitted at checkout. Price is the
// snapshot the cart was read with and becomes the order item's unit
// price.
type CheckoutCartItem struct {
	ProductID    uint         `json:"product_id"`
	Quantity     int          `json:"quantity"`
	Price        models.Money `json:"price"`
	CurrencyCode string       `json:"currency_code"`
}

// CheckoutAddressInput either a saved address id or the fields for a
// new one
type CheckoutAddressInput struct {
	ExistingID uint   `json:"existing_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	StateCode  string `json:"state_code"`
	Notes      string `json:"notes"`
}

// GuestSignupInput guest identity fields
type GuestSignupInput struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

// CheckoutInput common checkout input
type CheckoutInput struct {
	Items   []CheckoutCartItem   `json:"items"`
	Address CheckoutAddressInput `json:"address"`
}

// CheckoutResult the assembled order
type CheckoutResult struct {
	Order *models.Order      `json:"order"`
	Items []models.OrderItem `json:"items"`
}

// CheckoutService the order assembly flow
type CheckoutService struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	addressService *AddressService
	authService    *UserAuthService
	queueClient    *queue.Client
	provisionWait  time.Duration
	provisionPoll  time.Duration
}

// NewCheckoutService creates the checkout service
func NewCheckoutService(cfg *config.Config, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, addressService *AddressService, authService *UserAuthService, queueClient *queue.Client) *CheckoutService {
	wait := time.Duration(cfg.Checkout.ProvisionWaitMS) * time.Millisecond
	if wait <= 0 {
		wait = 5 * time.Second
	}
	poll := time.Duration(cfg.Checkout.ProvisionPollMS) * time.Millisecond
	if poll <= 0 {
		poll = 200 * time.Millisecond
	}
	return &CheckoutService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		addressService: addressService,
		authService:    authService,
		queueClient:    queueClient,
		provisionWait:  wait,
		provisionPoll:  poll,
	}
}

// CheckoutAuthenticated assembles an order for a signed-in user. When
// no saved address id is given a new non-default address is created
// first.
func (s *CheckoutService) CheckoutAuthenticated(ctx context.Context, userID uint, input CheckoutInput) (*CheckoutResult, error) {
	if userID == 0 {
		return nil, ErrValidationFailed
	}
	if err := validateCartItems(input.Items); err != nil {
		return nil, err
	}

	addressID, err := s.resolveAddress(ctx, userID, input.Address, false)
	if err != nil {
		return nil, err
	}
	return s.assembleOrder(userID, addressID, input.Items)
}

// CheckoutGuest assembles an order for a new guest. All validation
// runs before any write; the flow then registers the account, waits a
// bounded time for the user record to be provisioned, and creates the
// guest's first address as default.
func (s *CheckoutService) CheckoutGuest(ctx context.Context, input CheckoutInput, signup GuestSignupInput) (*CheckoutResult, error) {
	// fail-fast validation, no writes before this point
	if _, err := normalizeEmail(signup.Email); err != nil {
		return nil, err
	}
	password := strings.TrimSpace(signup.Password)
	confirm := strings.TrimSpace(signup.ConfirmPassword)
	if password == "" || confirm == "" {
		return nil, ErrPasswordRequired
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if err := validateCartItems(input.Items); err != nil {
		return nil, err
	}
	if input.Address.ExistingID != 0 {
		// a brand-new guest has no saved addresses
		return nil, ErrValidationFailed
	}
	if err := validateNewAddressFields(input.Address); err != nil {
		return nil, err
	}

	account, err := s.authService.Register(RegisterInput{
		Email:     signup.Email,
		Password:  signup.Password,
		FirstName: signup.FirstName,
		LastName:  signup.LastName,
		Phone:     signup.Phone,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.awaitProvisionedUser(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	addressID, err := s.resolveAddress(ctx, user.ID, input.Address, true)
	if err != nil {
		return nil, err
	}
	return s.assembleOrder(user.ID, addressID, input.Items)
}

// awaitProvisionedUser polls for the asynchronously provisioned user
// record until the bounded wait expires or the caller goes away.
func (s *CheckoutService) awaitProvisionedUser(ctx context.Context, accountID uint) (*models.User, error) {
	deadline := time.Now().Add(s.provisionWait)
	ticker := time.NewTicker(s.provisionPoll)
	defer ticker.Stop()
	for {
		user, err := s.authService.GetUserByAccountID(accountID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return user, nil
		}
		if time.Now().After(deadline) {
			logger.Errorw("account_provisioning_timeout", "account_id", accountID, "wait", s.provisionWait.String())
			return nil, ErrProvisionTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// resolveAddress returns the address id to attach to the order,
// creating one when no saved id was selected.
func (s *CheckoutService) resolveAddress(ctx context.Context, userID uint, input CheckoutAddressInput, isDefault bool) (uint, error) {
	if input.ExistingID != 0 {
		address, err := s.addressService.GetByIDAndUser(input.ExistingID, userID)
		if err != nil {
			return 0, err
		}
		return address.ID, nil
	}
	address, err := s.addressService.Create(ctx, CreateAddressInput{
		UserID:    userID,
		FullName:  input.FullName,
		Phone:     input.Phone,
		Address:   input.Address,
		StateCode: input.StateCode,
		Notes:     input.Notes,
		IsDefault: isDefault,
	})
	if err != nil {
		return 0, err
	}
	return address.ID, nil
}

// assembleOrder inserts the order row, then its items. The two writes
// are intentionally not one transaction: an order whose items failed
// must stay observable as a partial failure for reconciliation.
func (s *CheckoutService) assembleOrder(userID, addressID uint, items []CheckoutCartItem) (*CheckoutResult, error) {
	subtotal := decimal.Zero
	currency := constants.CurrencyDefault
	orderItems := make([]models.OrderItem, 0, len(items))
	now := time.Now()
	for i, item := range items {
		if i == 0 && strings.TrimSpace(item.CurrencyCode) != "" {
			currency = strings.TrimSpace(item.CurrencyCode)
		}
		lineTotal := item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
			CreatedAt:  now,
		})
	}

	order := &models.Order{
		UserID:       userID,
		AddressID:    addressID,
		Status:       models.OrderStatusPending,
		Subtotal:     models.NewMoneyFromDecimal(subtotal),
		TotalPrice:   models.NewMoneyFromDecimal(subtotal),
		CurrencyCode: currency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var err error
	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		order.Code = generateOrderCode()
		err = s.orderRepo.CreateOrder(order)
		// only a code collision earns a fresh code and another insert
		if err == nil || !repository.IsDuplicateKeyError(err) {
			break
		}
		logger.Warnw("order_create_retry", "attempt", attempt+1, "code", order.Code, "error", err)
	}
	if err != nil {
		logger.Errorw("order_create_failed", "user_id", userID, "error", err)
		return nil, err
	}

	if err := s.orderRepo.CreateItems(order.ID, orderItems); err != nil {
		logger.Errorw("order_items_create_failed", "order_id", order.ID, "code", order.Code, "error", err)
		return nil, newPartialOrderError(order.Code, err)
	}

	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{OrderID: order.ID}); err != nil {
			logger.Warnw("order_confirmation_enqueue_failed", "order_id", order.ID, "error", err)
		}
	}
	if s.cartRepo != nil {
		if err := s.cartRepo.ClearByUser(userID); err != nil {
			logger.Warnw("cart_clear_failed", "user_id", userID, "error", err)
		}
	}

	return &CheckoutResult{Order: order, Items: orderItems}, nil
}

func validateCartItems(items []CheckoutCartItem) error {
	if len(items) == 0 {
		return ErrCartEmpty
	}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return ErrInvalidCartItem
		}
		if item.Price.Decimal.IsNegative() {
			return ErrInvalidCartItem
		}
	}
	return nil
}

func validateNewAddressFields(input CheckoutAddressInput) error {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Phone) == "" ||
		strings.TrimSpace(input.Address) == "" {
		return ErrValidationFailed
	}
	if strings.TrimSpace(input.StateCode) == "" {
		return ErrStateRequired
	}
	return nil
}

// generateOrderCode builds a human-readable order code from the
// current timestamp plus a random base36 suffix.
func generateOrderCode() string {
	return fmt.Sprintf("%s-%d-%s", constants.OrderCodePrefix, time.Now().UnixMilli(), randBase36(9))
}

func randBase36(length int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String()
}
