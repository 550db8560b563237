package service

import (
	"context"
	"time"

	"github.com/attarah-next/internal/cache"
	"github.com/attarah-next/internal/logger"
	"github.com/attarah-next/internal/models"
	"github.com/attarah-next/internal/repository"
)

const categoryCacheKey = "categories"
const categoryCacheTTL = 5 * time.Minute

// CategoryService category listing
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService creates the category service
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories, served from cache when possible
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	if hit, err := cache.GetJSON(ctx, categoryCacheKey, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		logger.Warnw("category_cache_read_failed", "error", err)
	}

	categories, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoryCacheKey, categories, categoryCacheTTL); err != nil {
		logger.Warnw("category_cache_write_failed", "error", err)
	}
	return categories, nil
}

// GetBySlug resolves a category by either language slug
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
