package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var (
	ErrEventNotFound           = repository.ErrEventNotFound
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type EventRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindByIDWithRelations(ctx context.Context, id uint) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Update(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
	CountByStatus(ctx context.Context) (map[domain.EventStatus]int64, error)
	CountContactsByType(ctx context.Context, eventID uint) (map[domain.ContactType]int64, error)
	CountSessions(ctx context.Context, eventID uint) (int64, error)
	CountSpeakers(ctx context.Context, eventID uint) (int64, error)
}

// EventListQuery is the filter surface of the events list endpoint.
type EventListQuery struct {
	Page   domain.PageRequest
	Search string
	SortBy string
	Order  string
	Status domain.EventStatus
}

type EventService struct {
	repo EventRepository
	now  func() time.Time
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
		now:  time.Now,
	}
}

// ListEvents returns a page of events with derived statistics and display
// status attached to every row. The page slice and the total count are
// fetched in parallel.
func (s *EventService) ListEvents(ctx context.Context, query EventListQuery) (domain.Page[domain.EventDetail], error) {
	req := query.Page.Clamp()

	listQuery := repository.ListQuery{
		Limit:  req.Limit,
		Offset: req.Offset(),
		SortBy: query.SortBy,
		Order:  query.Order,
		Search: query.Search,
	}
	if query.Status != "" {
		listQuery.Filters = map[string]interface{}{"status": string(query.Status)}
	}

	var (
		events []domain.Event
		total  int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.repo.FindAll(gCtx, listQuery)
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
		return domain.Page[domain.EventDetail]{}, err
	}

	now := s.now()
	details := make([]domain.EventDetail, len(events))
	for i, event := range events {
		stats, err := s.statisticsFor(ctx, event.ID)
		if err != nil {
			return domain.Page[domain.EventDetail]{}, err
		}
		details[i] = domain.EventDetail{
			Event:           event,
			DisplayedStatus: event.DisplayStatus(now),
			Statistics:      stats,
		}
	}

	return domain.Page[domain.EventDetail]{
		Data: details,
		Meta: domain.NewPageMeta(req, total),
	}, nil
}

// GetEvent loads an event with all nested collections and derives the
// summary counts from the loaded relations. Counts are recomputed on every
// call; an event without contacts yields all-zero counts.
func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.EventDetail, error) {
	event, err := s.repo.FindByIDWithRelations(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.repo.FindByIDWithRelations -> %w", err)
	}

	stats := domain.EventStatistics{
		Sessions: len(event.Sessions),
		Speakers: len(event.Speakers),
	}
	for _, contact := range event.Contacts {
		switch contact.Type {
		case domain.ContactInvite:
			stats.Registrations++
		case domain.ContactPartner:
			stats.Partners++
		case domain.ContactClient:
			stats.Clients++
		}
	}

	return domain.EventDetail{
		Event:           event,
		DisplayedStatus: event.DisplayStatus(s.now()),
		Statistics:      stats,
	}, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if event.Status == "" {
		event.Status = domain.EventUpcoming
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	existing, err := s.repo.FindByID(ctx, event.ID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	event.Status = existing.Status
	event.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// UpdateStatus applies the event status state machine:
// UPCOMING -> ACTIVE -> COMPLETED, or any state -> CANCELLED.
func (s *EventService) UpdateStatus(ctx context.Context, id uint, next domain.EventStatus) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !event.Status.CanTransitionTo(next) {
		return domain.Event{}, fmt.Errorf("%w: %v -> %v", ErrInvalidStatusTransition, event.Status, next)
	}

	event.Status = next
	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// GetStatusCounts counts events grouped by stored status.
func (s *EventService) GetStatusCounts(ctx context.Context) (map[domain.EventStatus]int64, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountByStatus -> %w", err)
	}

	return counts, nil
}

// statisticsFor derives per-event counts from live relations; sessions,
// speakers and the contact grouping are independent reads issued in
// parallel.
func (s *EventService) statisticsFor(ctx context.Context, eventID uint) (domain.EventStatistics, error) {
	var (
		sessions int64
		speakers int64
		byType   map[domain.ContactType]int64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = s.repo.CountSessions(gCtx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.CountSessions -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		speakers, err = s.repo.CountSpeakers(gCtx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.CountSpeakers -> %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		byType, err = s.repo.CountContactsByType(gCtx, eventID)
		if err != nil {
			return fmt.Errorf("s.repo.CountContactsByType -> %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.EventStatistics{}, err
	}

	return domain.EventStatistics{
		Sessions:      int(sessions),
		Speakers:      int(speakers),
		Partners:      int(byType[domain.ContactPartner]),
		Registrations: int(byType[domain.ContactInvite]),
		Clients:       int(byType[domain.ContactClient]),
	}, nil
}
