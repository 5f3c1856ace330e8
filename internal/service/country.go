package service

import (
	"context"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

type CountryRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Country, error)
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type CountryService struct {
	repo CountryRepository
}

func NewCountryService(repo CountryRepository) *CountryService {
	return &CountryService{
		repo: repo,
	}
}

func (s *CountryService) ListCountries(ctx context.Context, page domain.PageRequest, search string) (domain.Page[domain.Country], error) {
	req := page.Clamp()

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:  req.Limit,
		Offset: req.Offset(),
		Search: search,
		SortBy: "name",
		Order:  "asc",
	}, s.repo.FindAll, s.repo.Count)
}
