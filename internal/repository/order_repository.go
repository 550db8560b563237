package repository

import (
	"errors"

	"github.com/attarah-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository order data access. CreateOrder and CreateItems are
// deliberately separate steps: an order row that exists without its
// items must stay observable so the caller can report it.
type OrderRepository interface {
	CreateOrder(order *models.Order) error
	CreateItems(orderID uint, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByCode(code string) (*models.Order, error)
	GetByCodeAndUser(code string, userID uint) (*models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM implementation
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates the order repository
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds a transaction
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// CreateOrder inserts the order row
func (r *GormOrderRepository) CreateOrder(order *models.Order) error {
	return r.db.Create(order).Error
}

// CreateItems inserts the order lines
func (r *GormOrderRepository) CreateItems(orderID uint, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	return r.db.Create(&items).Error
}

// GetByID fetches an order by primary key
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByCode fetches an order by its public code
func (r *GormOrderRepository) GetByCode(code string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Items.Product").Preload("Address").
		Where("code = ?", code).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByCodeAndUser fetches an order by code scoped to its owner
func (r *GormOrderRepository) GetByCodeAndUser(code string, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("Items.Product").Preload("Address").
		Where("code = ? AND user_id = ?", code, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser lists a user's orders
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).Where("user_id = ?", filter.UserID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Code != "" {
		query = query.Where("code LIKE ?", "%"+filter.Code+"%")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}
