package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/attarah-next/internal/http/response"
	"github.com/attarah-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts searches the catalog. Page size is fixed; an unknown
// category slug widens the search instead of failing it.
func (h *Handler) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	query := strings.TrimSpace(c.Query("q"))
	categorySlug := strings.TrimSpace(c.Query("category"))
	sort := strings.TrimSpace(c.Query("sort"))

	result, err := h.CatalogService.Search(query, categorySlug, page, sort)
	if err != nil {
		respondError(c, response.CodeInternal, "error.search_failed", err)
		return
	}
	response.Success(c, result)
}

// GetProduct fetches one product by id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	product, err := h.CatalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.search_failed", err)
		return
	}
	response.Success(c, product)
}
