package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/attarah-next/internal/config"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/queue"
	"github.com/attarah-next/internal/repository"

	"gorm.io/gorm"
)

type checkoutFixture struct {
	db       *gorm.DB
	checkout *CheckoutService
	auth     *UserAuthService
	address  *AddressService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)
	seedStates(t, db)

	cfg := &config.Config{
		JWT:      config.JWTConfig{SecretKey: "unit-test-secret-key-0123456789abcdef", ExpireHours: 1},
		Checkout: config.CheckoutConfig{ProvisionWaitMS: 500, ProvisionPollMS: 10},
	}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}

	stateService := NewStateService(repository.NewStateRepository(db))
	addressService := NewAddressService(repository.NewAddressRepository(db), stateService)
	authService := NewUserAuthService(cfg, repository.NewAccountRepository(db), repository.NewUserRepository(db), queueClient)
	checkoutService := NewCheckoutService(cfg, repository.NewOrderRepository(db), repository.NewCartRepository(db), addressService, authService, queueClient)

	return &checkoutFixture{
		db:       db,
		checkout: checkoutService,
		auth:     authService,
		address:  addressService,
	}
}

func seedStates(t *testing.T, db *gorm.DB) {
	t.Helper()
	states := []models.State{
		{Code: "DXB", CountryCode: "AE", NameEn: "Dubai", NameAr: "دبي", SortOrder: 1},
		{Code: "AUH", CountryCode: "AE", NameEn: "Abu Dhabi", NameAr: "أبوظبي", SortOrder: 2},
	}
	for i := range states {
		if err := db.Create(&states[i]).Error; err != nil {
			t.Fatalf("seed state failed: %v", err)
		}
	}
}

func seedProvisionedUser(t *testing.T, fx *checkoutFixture, email string) *models.User {
	t.Helper()
	account, err := fx.auth.Register(RegisterInput{Email: email, Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// queue is disabled in tests, so provisioning ran inline
	user, err := fx.auth.GetUserByAccountID(account.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user == nil {
		t.Fatalf("user should be provisioned inline")
	}
	return user
}

func newAddressFields() CheckoutAddressInput {
	return CheckoutAddressInput{
		FullName:  "Maya Haddad",
		Phone:     "+971500000001",
		Address:   "Apt 12, Marina Walk",
		StateCode: "DXB",
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestCheckoutTotalsAndItemSnapshots(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	result, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items: []CheckoutCartItem{
			{ProductID: 1, Quantity: 2, Price: money(t, "50.00"), CurrencyCode: "AED"},
			{ProductID: 2, Quantity: 1, Price: money(t, "30.00")},
		},
		Address: newAddressFields(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := result.Order.TotalPrice.String(); got != "130.00" {
		t.Fatalf("order total want 130.00 got %s", got)
	}
	if got := result.Order.Subtotal.String(); got != "130.00" {
		t.Fatalf("order subtotal want 130.00 got %s", got)
	}
	if result.Order.CurrencyCode != "AED" {
		t.Fatalf("currency should come from the first cart line, got %s", result.Order.CurrencyCode)
	}
	if result.Order.Status != models.OrderStatusPending {
		t.Fatalf("checkout order status want pending got %s", result.Order.Status)
	}
	if len(result.Items) != 2 {
		t.Fatalf("want 2 order items got %d", len(result.Items))
	}
	if got := result.Items[0].TotalPrice.String(); got != "100.00" {
		t.Fatalf("first line total want 100.00 got %s", got)
	}
	if got := result.Items[1].TotalPrice.String(); got != "30.00" {
		t.Fatalf("second line total want 30.00 got %s", got)
	}
	if got := result.Items[0].Price.String(); got != "50.00" {
		t.Fatalf("unit price snapshot want 50.00 got %s", got)
	}
}

func TestCheckoutCurrencyDefaultsWhenFirstLineBlank(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	result, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Order.CurrencyCode != "USD" {
		t.Fatalf("blank currency should default to USD, got %s", result.Order.CurrencyCode)
	}
}

func TestCheckoutOrderCodeFormat(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	result, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	parts := strings.Split(result.Order.Code, "-")
	if len(parts) != 3 {
		t.Fatalf("code want 3 segments got %q", result.Order.Code)
	}
	if parts[0] != "ORD" {
		t.Fatalf("code prefix want ORD got %s", parts[0])
	}
	if len(parts[2]) != 9 {
		t.Fatalf("code suffix want 9 chars got %q", parts[2])
	}
	for _, r := range parts[2] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'z') {
			t.Fatalf("code suffix must be base36, got %q", parts[2])
		}
	}
}

func TestCheckoutAuthenticatedExistingAddressCreatesNoNewAddress(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	saved, err := fx.address.Create(context.Background(), CreateAddressInput{
		UserID:    user.ID,
		FullName:  "Maya Haddad",
		Phone:     "+971500000001",
		Address:   "Apt 12, Marina Walk",
		StateCode: "DXB",
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	addressesBefore := countRows(t, fx.db, &models.Address{})

	result, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: CheckoutAddressInput{ExistingID: saved.ID},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if result.Order.AddressID != saved.ID {
		t.Fatalf("order should reference the saved address")
	}
	if got := countRows(t, fx.db, &models.Address{}); got != addressesBefore {
		t.Fatalf("existing address checkout must not create addresses, had %d now %d", addressesBefore, got)
	}
	if got := countRows(t, fx.db, &models.Order{}); got != 1 {
		t.Fatalf("want exactly one order got %d", got)
	}
	if got := countRows(t, fx.db, &models.OrderItem{}); got != 1 {
		t.Fatalf("want exactly one order item got %d", got)
	}
}

func TestCheckoutAuthenticatedForeignAddressRejected(t *testing.T) {
	fx := newCheckoutFixture(t)
	owner := seedProvisionedUser(t, fx, "owner@example.com")
	intruder := seedProvisionedUser(t, fx, "intruder@example.com")

	saved, err := fx.address.Create(context.Background(), CreateAddressInput{
		UserID:    owner.ID,
		FullName:  "Maya Haddad",
		Phone:     "+971500000001",
		Address:   "Apt 12, Marina Walk",
		StateCode: "DXB",
	})
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	_, err = fx.checkout.CheckoutAuthenticated(context.Background(), intruder.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: CheckoutAddressInput{ExistingID: saved.ID},
	})
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("want ErrAddressNotFound got %v", err)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	_, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{Address: newAddressFields()})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestCheckoutInvalidCartLineRejected(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	_, err := fx.checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 0, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("want ErrInvalidCartItem got %v", err)
	}
}

func TestGuestCheckoutMismatchedPasswordsWritesNothing(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	}, GuestSignupInput{
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("want ErrPasswordMismatch got %v", err)
	}

	if got := countRows(t, fx.db, &models.Account{}); got != 0 {
		t.Fatalf("failed validation must not create accounts, got %d", got)
	}
	if got := countRows(t, fx.db, &models.Address{}); got != 0 {
		t.Fatalf("failed validation must not create addresses, got %d", got)
	}
	if got := countRows(t, fx.db, &models.Order{}); got != 0 {
		t.Fatalf("failed validation must not create orders, got %d", got)
	}
}

func TestGuestCheckoutInvalidEmailWritesNothing(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	}, GuestSignupInput{
		Email:           "not-an-email",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}
	if got := countRows(t, fx.db, &models.Account{}); got != 0 {
		t.Fatalf("failed validation must not create accounts, got %d", got)
	}
}

func TestGuestCheckoutHappyPath(t *testing.T) {
	fx := newCheckoutFixture(t)

	result, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 2, Price: money(t, "45.50"), CurrencyCode: "AED"}},
		Address: newAddressFields(),
	}, GuestSignupInput{
		Email:           "Guest@Example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FirstName:       "Maya",
	})
	if err != nil {
		t.Fatalf("guest checkout failed: %v", err)
	}
	if got := result.Order.TotalPrice.String(); got != "91.00" {
		t.Fatalf("order total want 91.00 got %s", got)
	}

	var account models.Account
	if err := fx.db.Where("email = ?", "guest@example.com").First(&account).Error; err != nil {
		t.Fatalf("guest account should exist: %v", err)
	}

	var address models.Address
	if err := fx.db.Where("user_id = ?", result.Order.UserID).First(&address).Error; err != nil {
		t.Fatalf("guest address should exist: %v", err)
	}
	if !address.IsDefault {
		t.Fatalf("a guest's first address must be the default")
	}
	if address.CountryCode != "AE" {
		t.Fatalf("address country want AE got %s", address.CountryCode)
	}
}

func TestGuestCheckoutSavedAddressIDRejected(t *testing.T) {
	fx := newCheckoutFixture(t)

	_, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: CheckoutAddressInput{ExistingID: 7},
	}, GuestSignupInput{
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("a new guest has no saved addresses, want ErrValidationFailed got %v", err)
	}
}

func TestGuestCheckoutMissingStateRejected(t *testing.T) {
	fx := newCheckoutFixture(t)

	address := newAddressFields()
	address.StateCode = ""
	_, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: address,
	}, GuestSignupInput{
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, ErrStateRequired) {
		t.Fatalf("want ErrStateRequired got %v", err)
	}
	if got := countRows(t, fx.db, &models.Account{}); got != 0 {
		t.Fatalf("failed validation must not create accounts, got %d", got)
	}
}

// neverProvisionedUserRepo hides every user row, keeping the
// provisioning poll empty-handed forever.
type neverProvisionedUserRepo struct {
	repository.UserRepository
}

func (r neverProvisionedUserRepo) GetByAccountID(accountID uint) (*models.User, error) {
	return nil, nil
}

func newStalledProvisionFixture(t *testing.T, waitMS, pollMS int) *checkoutFixture {
	t.Helper()
	db := newTestDB(t)
	seedStates(t, db)

	cfg := &config.Config{
		JWT:      config.JWTConfig{SecretKey: "unit-test-secret-key-0123456789abcdef", ExpireHours: 1},
		Checkout: config.CheckoutConfig{ProvisionWaitMS: waitMS, ProvisionPollMS: pollMS},
	}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}

	stalledUsers := neverProvisionedUserRepo{UserRepository: repository.NewUserRepository(db)}
	stateService := NewStateService(repository.NewStateRepository(db))
	addressService := NewAddressService(repository.NewAddressRepository(db), stateService)
	authService := NewUserAuthService(cfg, repository.NewAccountRepository(db), stalledUsers, queueClient)
	checkoutService := NewCheckoutService(cfg, repository.NewOrderRepository(db), repository.NewCartRepository(db), addressService, authService, queueClient)

	return &checkoutFixture{
		db:       db,
		checkout: checkoutService,
		auth:     authService,
		address:  addressService,
	}
}

func TestGuestCheckoutProvisioningTimeout(t *testing.T) {
	fx := newStalledProvisionFixture(t, 50, 10)

	_, err := fx.checkout.CheckoutGuest(context.Background(), CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	}, GuestSignupInput{
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, ErrProvisionTimeout) {
		t.Fatalf("want ErrProvisionTimeout got %v", err)
	}

	// the account write precedes the wait; the order never happens
	if got := countRows(t, fx.db, &models.Account{}); got != 1 {
		t.Fatalf("registration should have created the account, got %d", got)
	}
	if got := countRows(t, fx.db, &models.Address{}); got != 0 {
		t.Fatalf("timed-out checkout must not create addresses, got %d", got)
	}
	if got := countRows(t, fx.db, &models.Order{}); got != 0 {
		t.Fatalf("timed-out checkout must not create orders, got %d", got)
	}
}

func TestGuestCheckoutCancelledContextStopsProvisioningWait(t *testing.T) {
	fx := newStalledProvisionFixture(t, 5000, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := fx.checkout.CheckoutGuest(ctx, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	}, GuestSignupInput{
		Email:           "guest@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled wait should return promptly, took %s", elapsed)
	}
	if got := countRows(t, fx.db, &models.Order{}); got != 0 {
		t.Fatalf("cancelled checkout must not create orders, got %d", got)
	}
}

// conflictingCodeOrderRepo rejects the first insert with a unique
// violation, then lets the regenerated code through.
type conflictingCodeOrderRepo struct {
	repository.OrderRepository
	calls int
}

func (r *conflictingCodeOrderRepo) CreateOrder(order *models.Order) error {
	r.calls++
	if r.calls == 1 {
		return errors.New(`duplicate key value violates unique constraint "idx_orders_code"`)
	}
	return r.OrderRepository.CreateOrder(order)
}

// unreachableOrderRepo fails every insert with a non-conflict error.
type unreachableOrderRepo struct {
	repository.OrderRepository
	calls int
}

func (r *unreachableOrderRepo) CreateOrder(order *models.Order) error {
	r.calls++
	return errors.New("dial tcp 10.0.0.5:5432: connection refused")
}

func TestCheckoutRetriesOnlyOnOrderCodeConflict(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	cfg := &config.Config{Checkout: config.CheckoutConfig{ProvisionWaitMS: 500, ProvisionPollMS: 10}}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	stateService := NewStateService(repository.NewStateRepository(fx.db))
	addressService := NewAddressService(repository.NewAddressRepository(fx.db), stateService)

	conflicting := &conflictingCodeOrderRepo{OrderRepository: repository.NewOrderRepository(fx.db)}
	checkout := NewCheckoutService(cfg, conflicting, repository.NewCartRepository(fx.db), addressService, fx.auth, queueClient)
	result, err := checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if err != nil {
		t.Fatalf("checkout should survive one code conflict: %v", err)
	}
	if conflicting.calls != 2 {
		t.Fatalf("conflict should trigger exactly one regenerated insert, calls %d", conflicting.calls)
	}
	if result.Order.Code == "" {
		t.Fatalf("regenerated order should carry a code")
	}

	unreachable := &unreachableOrderRepo{OrderRepository: repository.NewOrderRepository(fx.db)}
	checkout = NewCheckoutService(cfg, unreachable, repository.NewCartRepository(fx.db), addressService, fx.auth, queueClient)
	_, err = checkout.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if err == nil {
		t.Fatalf("unreachable backend should fail the checkout")
	}
	if errors.Is(err, ErrPartialOrderFailure) {
		t.Fatalf("pre-order failure must not look partial, got %v", err)
	}
	if unreachable.calls != 1 {
		t.Fatalf("non-conflict errors must not be retried, calls %d", unreachable.calls)
	}
}

// failingItemsOrderRepo lets the order row land, then fails the item
// insert, reproducing a partially assembled order.
type failingItemsOrderRepo struct {
	repository.OrderRepository
}

func (r failingItemsOrderRepo) CreateItems(orderID uint, items []models.OrderItem) error {
	return errors.New("simulated insert failure")
}

func TestCheckoutPartialOrderFailureKeepsOrderRow(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedProvisionedUser(t, fx, "buyer@example.com")

	cfg := &config.Config{Checkout: config.CheckoutConfig{ProvisionWaitMS: 500, ProvisionPollMS: 10}}
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client failed: %v", err)
	}
	brokenRepo := failingItemsOrderRepo{OrderRepository: repository.NewOrderRepository(fx.db)}
	stateService := NewStateService(repository.NewStateRepository(fx.db))
	addressService := NewAddressService(repository.NewAddressRepository(fx.db), stateService)
	broken := NewCheckoutService(cfg, brokenRepo, repository.NewCartRepository(fx.db), addressService, fx.auth, queueClient)

	_, err = broken.CheckoutAuthenticated(context.Background(), user.ID, CheckoutInput{
		Items:   []CheckoutCartItem{{ProductID: 1, Quantity: 1, Price: money(t, "10.00")}},
		Address: newAddressFields(),
	})
	if !errors.Is(err, ErrPartialOrderFailure) {
		t.Fatalf("want ErrPartialOrderFailure got %v", err)
	}

	var partial *PartialOrderError
	if !errors.As(err, &partial) {
		t.Fatalf("error should carry the created order code")
	}
	if partial.OrderCode == "" {
		t.Fatalf("partial failure must name the order code")
	}

	// deliberately no rollback: the order row stays for reconciliation
	if got := countRows(t, fx.db, &models.Order{}); got != 1 {
		t.Fatalf("order row should survive the item failure, got %d", got)
	}
	if got := countRows(t, fx.db, &models.OrderItem{}); got != 0 {
		t.Fatalf("no order items should exist, got %d", got)
	}
}
