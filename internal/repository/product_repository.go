package repository

import (
	"errors"
	"strings"

	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// ProductRepository product data access
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	SoftDelete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM implementation
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the product repository
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds a transaction
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn in a transaction
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// sortClause maps a public sort token to an ORDER BY clause.
// Unknown or empty tokens fall back to newest-first.
func sortClause(sort string) string {
	switch strings.ToLower(strings.TrimSpace(sort)) {
	case "oldest":
		return "created_at ASC"
	case "price-low":
		return "price ASC"
	case "price-high":
		return "price DESC"
	case "name-az":
		return "name_en ASC"
	case "name-za":
		return "name_en DESC"
	case "rating-high":
		return "rating_sum DESC"
	case "rating-low":
		return "rating_sum ASC"
	default: // newest
		return "created_at DESC"
	}
}

// List searches sellable products. Rows flagged deleted or with
// negative stock never qualify.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{}).
		Where("is_deleted = ?", false).
		Where("quantity >= ?", 0)
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildLikeCondition(r.db, []string{"name_en", "name_ar"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(sortClause(filter.Sort)).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// GetByID fetches one sellable product
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").
		Where("is_deleted = ?", false).
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs fetches products in bulk
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves a product
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// SoftDelete flags a product as deleted without removing the row,
// keeping order item references intact.
func (r *GormProductRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_deleted", true).Error
}
