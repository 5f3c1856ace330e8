package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrCountryNotFound = dao.ErrCountryNotFound

type CountryDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.Country, error)
	FindOrCreateByName(ctx context.Context, name, code string) (dao.Country, error)
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
}

type CountryRepository struct {
	dao CountryDAO
}

func NewCountryRepository(dao CountryDAO) *CountryRepository {
	return &CountryRepository{
		dao: dao,
	}
}

func (r *CountryRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Country, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	countries := make([]domain.Country, len(found))
	for i, c := range found {
		countries[i] = domain.Country{ID: c.ID, Name: c.Name, Code: c.Code}
	}

	return countries, nil
}

func (r *CountryRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *CountryRepository) FindOrCreateByName(ctx context.Context, name, code string) (domain.Country, error) {
	found, err := r.dao.FindOrCreateByName(ctx, name, code)
	if err != nil {
		return domain.Country{}, fmt.Errorf("r.dao.FindOrCreateByName -> %w", err)
	}

	return domain.Country{ID: found.ID, Name: found.Name, Code: found.Code}, nil
}
