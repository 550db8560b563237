package public

import (
	"strconv"

	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart returns the signed-in user's cart
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, items)
}

// UpsertCartItemRequest cart update request
type UpsertCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpsertCartItem adds or updates a cart line
func (h *Handler) UpsertCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpsertCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.UpsertItem(service.UpsertCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// RemoveCartItem deletes one cart line
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, uint(productID)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}

// ClearCart empties the user's cart
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
