package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByIDWithRelations(ctx context.Context, id uint) (dao.Event, error)
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	Update(ctx context.Context, event dao.Event) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
	CountByStatus(ctx context.Context) ([]dao.StatusCount, error)
	CountContactsByType(ctx context.Context, eventID uint) ([]dao.TypeCount, error)
	CountSessions(ctx context.Context, eventID uint) (int64, error)
	CountSpeakers(ctx context.Context, eventID uint) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByIDWithRelations(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByIDWithRelations(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByIDWithRelations -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) (domain.Event, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error) {
	counts, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountByStatus -> %w", err)
	}

	byStatus := make(map[domain.EventStatus]int64, len(counts))
	for _, c := range counts {
		byStatus[domain.EventStatus(c.Status)] = c.Count
	}

	return byStatus, nil
}

func (r *EventRepository) CountContactsByType(ctx context.Context, eventID uint) (map[domain.ContactType]int64, error) {
	counts, err := r.dao.CountContactsByType(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.CountContactsByType -> %w", err)
	}

	byType := make(map[domain.ContactType]int64, len(counts))
	for _, c := range counts {
		byType[domain.ContactType(c.Type)] = c.Count
	}

	return byType, nil
}

func (r *EventRepository) CountSessions(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountSessions(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountSessions -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) CountSpeakers(ctx context.Context, eventID uint) (int64, error) {
	count, err := r.dao.CountSpeakers(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountSpeakers -> %w", err)
	}

	return count, nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Organizers:  e.Organizers,
		Themes:      e.Themes,
		Goals:       e.Goals,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Status:      string(e.Status),
		LogoURL:     e.LogoURL,
		CoverURL:    e.CoverURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	event := domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Organizers:  e.Organizers,
		Themes:      e.Themes,
		Goals:       e.Goals,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Location:    e.Location,
		Status:      domain.EventStatus(e.Status),
		LogoURL:     e.LogoURL,
		CoverURL:    e.CoverURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}

	for _, s := range e.Sessions {
		event.Sessions = append(event.Sessions, sessionDaoToDomain(s))
	}
	for _, s := range e.Speakers {
		event.Speakers = append(event.Speakers, speakerDaoToDomain(s))
	}
	for _, c := range e.Contacts {
		event.Contacts = append(event.Contacts, contactDaoToDomain(c))
	}
	for _, q := range e.QRCodes {
		event.QRCodes = append(event.QRCodes, qrCodeDaoToDomain(q))
	}
	for _, i := range e.Invoices {
		event.Invoices = append(event.Invoices, invoiceDaoToDomain(i))
	}

	return event
}
