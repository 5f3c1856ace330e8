package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrContactNotFound = repository.ErrContactNotFound

type ContactRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Contact, error)
	FindByID(ctx context.Context, id uint) (domain.Contact, error)
	Create(ctx context.Context, contact domain.Contact, countryName, countryCode string) (domain.Contact, error)
	Update(ctx context.Context, contact domain.Contact) (domain.Contact, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
	CountByCountry(ctx context.Context, eventID uint) ([]domain.CountryCount, error)
}

// ContactEventRepository is the slice of the event repository the contact
// service needs to confirm the owning event exists.
type ContactEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

// InviteMailer notifies a newly created invite contact. Implementations
// live in internal/mail.
type InviteMailer interface {
	SendInvite(ctx context.Context, to, name, eventTitle string) error
}

type ContactListQuery struct {
	Page    domain.PageRequest
	Search  string
	SortBy  string
	Order   string
	EventID uint
	Type    domain.ContactType
	Status  domain.ContactStatus
}

type ContactService struct {
	repo      ContactRepository
	eventRepo ContactEventRepository
	mailer    InviteMailer
}

func NewContactService(repo ContactRepository, eventRepo ContactEventRepository, mailer InviteMailer) *ContactService {
	return &ContactService{
		repo:      repo,
		eventRepo: eventRepo,
		mailer:    mailer,
	}
}

// ListContacts returns a page of contacts; slice and total are fetched in
// parallel.
func (s *ContactService) ListContacts(ctx context.Context, query ContactListQuery) (domain.Page[domain.Contact], error) {
	req := query.Page.Clamp()

	filters := map[string]interface{}{}
	if query.EventID != 0 {
		filters["event_id"] = query.EventID
	}
	if query.Type != "" {
		filters["type"] = string(query.Type)
	}
	if query.Status != "" {
		filters["status"] = string(query.Status)
	}

	listQuery := repository.ListQuery{
		Limit:   req.Limit,
		Offset:  req.Offset(),
		SortBy:  query.SortBy,
		Order:   query.Order,
		Search:  query.Search,
		Filters: filters,
	}

	var (
		contacts []domain.Contact
		total    int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = s.repo.FindAll(gCtx, listQuery)
		if err != nil {
			return fmt.Errorf("s.repo.FindAll -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gCtx, listQuery)
		if err != nil {
			return fmt.Errorf("s.repo.Count -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Page[domain.Contact]{}, err
	}

	return domain.Page[domain.Contact]{
		Data: contacts,
		Meta: domain.NewPageMeta(req, total),
	}, nil
}

func (s *ContactService) GetContact(ctx context.Context, id uint) (domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return contact, nil
}

// CreateContact verifies the owning event, creates the contact (resolving
// the country by name inside the repository transaction) and, for invites
// with an email, sends a notification. A mail failure is logged but does
// not fail the create.
func (s *ContactService) CreateContact(ctx context.Context, contact domain.Contact, countryName, countryCode string) (domain.Contact, error) {
	event, err := s.eventRepo.FindByID(ctx, contact.EventID)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	if contact.Status == "" {
		contact.Status = domain.ContactPending
	}

	created, err := s.repo.Create(ctx, contact, countryName, countryCode)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if created.Type == domain.ContactInvite && created.Email != "" && s.mailer != nil {
		if mailErr := s.mailer.SendInvite(ctx, created.Email, created.Name, event.Title); mailErr != nil {
			zap.L().Warn("failed to send invite mail",
				zap.Uint("contact_id", created.ID),
				zap.Error(mailErr),
			)
		}
	}

	return created, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	existing, err := s.repo.FindByID(ctx, contact.ID)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	contact.EventID = existing.EventID
	contact.CreatedAt = existing.CreatedAt
	if contact.Country == nil {
		contact.Country = existing.Country
	}

	updated, err := s.repo.Update(ctx, contact)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ContactService) ApproveContact(ctx context.Context, id uint) (domain.Contact, error) {
	return s.resolveContact(ctx, id, (*domain.Contact).Approve)
}

func (s *ContactService) RejectContact(ctx context.Context, id uint) (domain.Contact, error) {
	return s.resolveContact(ctx, id, (*domain.Contact).Reject)
}

func (s *ContactService) resolveContact(ctx context.Context, id uint, apply func(*domain.Contact)) (domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	apply(&contact)

	updated, err := s.repo.Update(ctx, contact)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// GetCountryBreakdown counts an event's contacts grouped by country.
func (s *ContactService) GetCountryBreakdown(ctx context.Context, eventID uint) ([]domain.CountryCount, error) {
	counts, err := s.repo.CountByCountry(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountByCountry -> %w", err)
	}

	return counts, nil
}
