package repository

import "time"

// ProductListFilter catalog search filter
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint // 0 means unfiltered
	Search       string
	Sort         string // see sortClause for the accepted tokens
	WithCategory bool
}

// OrderListFilter order listing filter
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	Code        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
