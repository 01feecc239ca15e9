package store

import (
	"gorm.io/gorm"
)

type SortOrder int

const (
	Unsorted SortOrder = iota
	SortByID
	SortByCreatedTime
	SortByUpdatedTime
)

type BaseQuerier struct {
	QueryFn []func(tx *gorm.DB) *gorm.DB
}

type UserQueryFilter BaseQuerier

func NewUserQueryFilter() *UserQueryFilter {
	return &UserQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (uf *UserQueryFilter) ByUsername(username string) *UserQueryFilter {
	uf.QueryFn = append(uf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("username = ?", username)
	})
	return uf
}

func (uf *UserQueryFilter) ByEmail(email string) *UserQueryFilter {
	uf.QueryFn = append(uf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("email = ?", email)
	})
	return uf
}

type CalculationQueryFilter BaseQuerier

func NewCalculationQueryFilter() *CalculationQueryFilter {
	return &CalculationQueryFilter{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (cf *CalculationQueryFilter) ByUserID(userID string) *CalculationQueryFilter {
	cf.QueryFn = append(cf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("user_id = ?", userID)
	})
	return cf
}

func (cf *CalculationQueryFilter) ByType(calculationType string) *CalculationQueryFilter {
	cf.QueryFn = append(cf.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("type = ?", calculationType)
	})
	return cf
}

type CalculationQueryOptions BaseQuerier

func NewCalculationQueryOptions() *CalculationQueryOptions {
	return &CalculationQueryOptions{QueryFn: make([]func(tx *gorm.DB) *gorm.DB, 0)}
}

func (o *CalculationQueryOptions) WithSortOrder(sort SortOrder) *CalculationQueryOptions {
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		switch sort {
		case SortByID:
			return tx.Order("id")
		case SortByUpdatedTime:
			return tx.Order("updated_at")
		case SortByCreatedTime:
			return tx.Order("created_at")
		default:
			return tx
		}
	})
	return o
}

func (o *CalculationQueryOptions) WithLimit(limit int) *CalculationQueryOptions {
	if limit <= 0 {
		return o
	}
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(limit)
	})
	return o
}

func (o *CalculationQueryOptions) WithOffset(offset int) *CalculationQueryOptions {
	if offset <= 0 {
		return o
	}
	o.QueryFn = append(o.QueryFn, func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(offset)
	})
	return o
}
