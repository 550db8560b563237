package public

import (
	"github.com/attarah-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCategories lists all categories
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetStates lists the selectable emirates
func (h *Handler) GetStates(c *gin.Context) {
	states, err := h.StateService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.state_fetch_failed", err)
		return
	}
	response.Success(c, states)
}
