package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrContactNotFound = dao.ErrContactNotFound

type ContactDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.Contact, error)
	FindByIDWithCountry(ctx context.Context, id uint) (dao.Contact, error)
	Insert(ctx context.Context, contact dao.Contact) (dao.Contact, error)
	InsertWithCountry(ctx context.Context, contact dao.Contact, countryName, countryCode string) (dao.Contact, error)
	Update(ctx context.Context, contact dao.Contact) (dao.Contact, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
	CountByCountry(ctx context.Context, eventID uint) ([]dao.CountryRow, error)
}

type ContactRepository struct {
	dao ContactDAO
}

func NewContactRepository(dao ContactDAO) *ContactRepository {
	return &ContactRepository{
		dao: dao,
	}
}

func (r *ContactRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Contact, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	contacts := make([]domain.Contact, len(found))
	for i, c := range found {
		contacts[i] = contactDaoToDomain(c)
	}

	return contacts, nil
}

func (r *ContactRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *ContactRepository) FindByID(ctx context.Context, id uint) (domain.Contact, error) {
	found, err := r.dao.FindByIDWithCountry(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("r.dao.FindByIDWithCountry -> %w", err)
	}

	return contactDaoToDomain(found), nil
}

// Create resolves the country by name when one is given; the lookup/create
// and the contact insert share a transaction in the DAO.
func (r *ContactRepository) Create(ctx context.Context, contact domain.Contact, countryName, countryCode string) (domain.Contact, error) {
	created, err := r.dao.InsertWithCountry(ctx, contactDomainToDao(contact), countryName, countryCode)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("r.dao.InsertWithCountry -> %w", err)
	}

	return contactDaoToDomain(created), nil
}

func (r *ContactRepository) Update(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	updated, err := r.dao.Update(ctx, contactDomainToDao(contact))
	if err != nil {
		return domain.Contact{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return contactDaoToDomain(updated), nil
}

func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ContactRepository) CountByCountry(ctx context.Context, eventID uint) ([]domain.CountryCount, error) {
	rows, err := r.dao.CountByCountry(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByCountry -> %w", err)
	}

	counts := make([]domain.CountryCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.CountryCount{Country: row.Country, Count: row.Count}
	}

	return counts, nil
}

func contactDaoToDomain(c dao.Contact) domain.Contact {
	contact := domain.Contact{
		ID:           c.ID,
		EventID:      c.EventID,
		Type:         domain.ContactType(c.Type),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Website:      c.Website,
		Status:       domain.ContactStatus(c.Status),
		Notes:        c.Notes,
		Tier:         c.Tier,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.Country != nil {
		contact.Country = &domain.Country{
			ID:   c.Country.ID,
			Name: c.Country.Name,
			Code: c.Country.Code,
		}
	}

	return contact
}

func contactDomainToDao(c domain.Contact) dao.Contact {
	contact := dao.Contact{
		ID:           c.ID,
		EventID:      c.EventID,
		Type:         string(c.Type),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Website:      c.Website,
		Status:       string(c.Status),
		Notes:        c.Notes,
		Tier:         c.Tier,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}

	if c.Country != nil && c.Country.ID != 0 {
		id := c.Country.ID
		contact.CountryID = &id
	}

	return contact
}
