package public

import (
	"errors"

	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var checkoutCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrAddressRequired, code: response.CodeBadRequest, key: "error.address_required"},
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
	{target: service.ErrStateRequired, code: response.CodeBadRequest, key: "error.state_required"},
	{target: service.ErrValidationFailed, code: response.CodeBadRequest, key: "error.validation_failed"},
	{target: service.ErrPartialOrderFailure, code: response.CodeInternal, key: "error.partial_order_failure"},
}

var guestCheckoutExtraErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrPasswordRequired, code: response.CodeBadRequest, key: "error.password_required"},
	{target: service.ErrPasswordMismatch, code: response.CodeBadRequest, key: "error.password_mismatch"},
	{target: service.ErrProvisionTimeout, code: response.CodeInternal, key: "error.provision_timeout"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrPasswordRequired, code: response.CodeBadRequest, key: "error.password_required"},
	{target: service.ErrPasswordMismatch, code: response.CodeBadRequest, key: "error.password_mismatch"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.invalid_credentials"},
}

var addressErrorRules = []mappedHandlerError{
	{target: service.ErrValidationFailed, code: response.CodeBadRequest, key: "error.validation_failed"},
	{target: service.ErrStateRequired, code: response.CodeBadRequest, key: "error.state_required"},
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, key: "error.address_not_found"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrValidationFailed, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutCommonErrorRules, response.CodeInternal, "error.checkout_failed")
}

func respondGuestCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutCommonErrorRules, guestCheckoutExtraErrorRules), response.CodeInternal, "error.checkout_failed")
}

func respondRegisterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.register_failed")
}

func respondLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, response.CodeInternal, "error.login_failed")
}

func respondAddressError(c *gin.Context, err error) {
	respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.address_create_failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}
