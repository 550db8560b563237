package service

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// codes and localized messages with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrSearchFailed        = errors.New("product search failed")
	ErrValidationFailed    = errors.New("validation failed")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmailExists         = errors.New("email already registered")
	ErrPasswordRequired    = errors.New("password required")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrProductNotAvailable = errors.New("product not available")
	ErrAddressRequired     = errors.New("address selection required")
	ErrAddressNotFound     = errors.New("address not found")
	ErrStateRequired       = errors.New("state code required")
	ErrProvisionTimeout    = errors.New("account provisioning timed out")
	ErrPartialOrderFailure = errors.New("order created but items failed")
)

// PartialOrderError carries the code of the order row that was created
// before the item insert failed, so callers can surface it.
type PartialOrderError struct {
	OrderCode string
	Err       error
}

// Error implements error
func (e *PartialOrderError) Error() string {
	return "order " + e.OrderCode + ": " + e.Err.Error()
}

// Unwrap matches ErrPartialOrderFailure via errors.Is
func (e *PartialOrderError) Unwrap() error {
	return ErrPartialOrderFailure
}

// newPartialOrderError wraps an item-insert failure
func newPartialOrderError(orderCode string, err error) *PartialOrderError {
	return &PartialOrderError{OrderCode: orderCode, Err: err}
}
