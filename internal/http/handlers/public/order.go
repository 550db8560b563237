package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/repository"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ListOrders lists the signed-in user's orders
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	status := strings.TrimSpace(c.Query("status"))
	code := strings.TrimSpace(c.Query("code"))

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
		Status:   status,
		Code:     code,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	pagination := response.BuildPagination(page, pageSize, total)
	response.SuccessWithPage(c, orders, pagination)
}

// GetOrder loads the order confirmation view by code. Unresolvable
// codes are a 404, never an empty success.
func (h *Handler) GetOrder(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.GetByCode(code, getOptionalUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, order)
}

// GetCheckoutPage loads the order plus the user's saved addresses and
// the selectable regions for the checkout page.
func (h *Handler) GetCheckoutPage(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	page, err := h.OrderService.GetCheckoutPage(c.Request.Context(), code, getOptionalUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, page)
}
