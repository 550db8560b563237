package public

import (
	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutItemRequest one cart line with its price snapshot
type CheckoutItemRequest struct {
	ProductID    uint         `json:"product_id" binding:"required"`
	Quantity     int          `json:"quantity" binding:"required"`
	Price        models.Money `json:"price"`
	CurrencyCode string       `json:"currency_code"`
}

// CheckoutAddressRequest saved address id or new address fields
type CheckoutAddressRequest struct {
	ExistingID uint   `json:"existing_id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	StateCode  string `json:"state_code"`
	Notes      string `json:"notes"`
}

// CheckoutRequest authenticated checkout request
type CheckoutRequest struct {
	Items   []CheckoutItemRequest  `json:"items" binding:"required"`
	Address CheckoutAddressRequest `json:"address"`
}

// GuestCheckoutRequest guest checkout request with signup fields
type GuestCheckoutRequest struct {
	Items           []CheckoutItemRequest  `json:"items" binding:"required"`
	Address         CheckoutAddressRequest `json:"address"`
	Email           string                 `json:"email" binding:"required"`
	Password        string                 `json:"password" binding:"required"`
	ConfirmPassword string                 `json:"confirm_password" binding:"required"`
	FirstName       string                 `json:"first_name"`
	LastName        string                 `json:"last_name"`
	Phone           string                 `json:"phone"`
}

// Checkout assembles an order for the signed-in user
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.CheckoutService.CheckoutAuthenticated(c.Request.Context(), uid, checkoutInputFromRequest(req.Items, req.Address))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, result)
}

// GuestCheckout registers a guest account and assembles their order
func (h *Handler) GuestCheckout(c *gin.Context) {
	var req GuestCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	result, err := h.CheckoutService.CheckoutGuest(c.Request.Context(),
		checkoutInputFromRequest(req.Items, req.Address),
		service.GuestSignupInput{
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
		})
	if err != nil {
		respondGuestCheckoutError(c, err)
		return
	}
	response.Success(c, result)
}

func checkoutInputFromRequest(items []CheckoutItemRequest, address CheckoutAddressRequest) service.CheckoutInput {
	lines := make([]service.CheckoutCartItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, service.CheckoutCartItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			CurrencyCode: item.CurrencyCode,
		})
	}
	return service.CheckoutInput{
		Items: lines,
		Address: service.CheckoutAddressInput{
			ExistingID: address.ExistingID,
			FullName:   address.FullName,
			Phone:      address.Phone,
			Address:    address.Address,
			StateCode:  address.StateCode,
			Notes:      address.Notes,
		},
	}
}
