package public

import (
	"strconv"

	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListAddresses lists the user's saved addresses, default first
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	addresses, err := h.AddressService.ListByUser(uid)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, addresses)
}

// CreateAddressRequest new address request
type CreateAddressRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	StateCode string `json:"state_code" binding:"required"`
	Notes     string `json:"notes"`
	IsDefault bool   `json:"is_default"`
}

// CreateAddress saves a new shipping address
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	address, err := h.AddressService.Create(c.Request.Context(), service.CreateAddressInput{
		UserID:    uid,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
		StateCode: req.StateCode,
		Notes:     req.Notes,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, address)
}

// DeleteAddress removes a saved address
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.AddressService.Delete(uint(id), uid); err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
