package service

import (
	"strings"

	"github.com/attarah-next/internal/constants"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"
)

// CatalogService storefront product search
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates the catalog service
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// SearchResult one page of catalog results plus paging metadata
type SearchResult struct {
	Products    []models.Product `json:"products"`
	Total       int64            `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	HasMore     bool             `json:"hasMore"`
}

// Search runs a catalog search. The page size is fixed at 8. A category
// slug that resolves in neither language is logged and the search runs
// unfiltered; it is never an error to the caller.
func (s *CatalogService) Search(query, categorySlug string, page int, sort string) (*SearchResult, error) {
	if page < 1 {
		page = 1
	}

	var categoryID uint
	if slug := strings.TrimSpace(categorySlug); slug != "" {
		category, err := s.categoryRepo.GetBySlug(slug)
		if err != nil || category == nil {
			logger.Warnw("category_resolution_miss", "slug", slug, "error", err)
		} else {
			categoryID = category.ID
		}
	}

	products, total, err := s.productRepo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     constants.CatalogPageSize,
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(query),
		Sort:         sort,
		WithCategory: true,
	})
	if err != nil {
		logger.Errorw("product_search_failed", "error", err, "query", query, "category_slug", categorySlug, "page", page, "sort", sort)
		return nil, ErrSearchFailed
	}

	totalPages := int((total + constants.CatalogPageSize - 1) / constants.CatalogPageSize)
	return &SearchResult{
		Products:    products,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasMore:     page < totalPages,
	}, nil
}

// GetProduct fetches one sellable product for the detail page
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}
