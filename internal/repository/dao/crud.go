package dao

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ListOptions is the opaque filter/pagination object passed through to the
// underlying query. No validation happens at this layer.
type ListOptions struct {
	Limit  int
	Offset int
	SortBy string
	Order  string
	Search string
	Conds  map[string]interface{}
}

// CRUD is the uniform data-access surface shared by every entity DAO.
// Entity DAOs embed it and add their relation-aware queries on top.
type CRUD[T any] struct {
	db         *gorm.DB
	notFound   error
	searchCols []string
	sortable   map[string]bool
}

func NewCRUD[T any](db *gorm.DB, notFound error, searchCols []string, sortable ...string) *CRUD[T] {
	cols := make(map[string]bool, len(sortable))
	for _, col := range sortable {
		cols[col] = true
	}

	return &CRUD[T]{
		db:         db,
		notFound:   notFound,
		searchCols: searchCols,
		sortable:   cols,
	}
}

func (c *CRUD[T]) query(ctx context.Context, opts ListOptions) *gorm.DB {
	q := c.db.WithContext(ctx).Model(new(T))

	for col, val := range opts.Conds {
		q = q.Where(col+" = ?", val)
	}

	if opts.Search != "" && len(c.searchCols) > 0 {
		clauses := make([]string, len(c.searchCols))
		args := make([]interface{}, len(c.searchCols))
		for i, col := range c.searchCols {
			clauses[i] = col + " ILIKE ?"
			args[i] = "%" + opts.Search + "%"
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}

	return q
}

func (c *CRUD[T]) FindAll(ctx context.Context, opts ListOptions) ([]T, error) {
	q := c.query(ctx, opts)

	if opts.SortBy != "" && c.sortable[opts.SortBy] {
		order := "asc"
		if strings.EqualFold(opts.Order, "desc") {
			order = "desc"
		}
		q = q.Order(opts.SortBy + " " + order)
	} else {
		q = q.Order("id asc")
	}

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var items []T
	if result := q.Find(&items); result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

func (c *CRUD[T]) FindByID(ctx context.Context, id uint) (T, error) {
	var item T

	result := c.db.WithContext(ctx).First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return item, c.notFound
		}

		return item, result.Error
	}

	return item, nil
}

func (c *CRUD[T]) Insert(ctx context.Context, item T) (T, error) {
	if result := c.db.WithContext(ctx).Create(&item); result.Error != nil {
		return item, result.Error
	}

	return item, nil
}

func (c *CRUD[T]) Update(ctx context.Context, item T) (T, error) {
	if result := c.db.WithContext(ctx).Save(&item); result.Error != nil {
		return item, result.Error
	}

	return item, nil
}

func (c *CRUD[T]) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return c.notFound
	}

	return nil
}

func (c *CRUD[T]) Count(ctx context.Context, opts ListOptions) (int64, error) {
	var total int64

	if result := c.query(ctx, opts).Count(&total); result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}
