package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

type stubEventRepo struct {
	events      []domain.Event
	total       int64
	byID        map[uint]domain.Event
	updated     *domain.Event
	byStatus    map[domain.EventStatus]int64
	sessions    int64
	speakers    int64
	contactType map[domain.ContactType]int64
}

func (r *stubEventRepo) FindAll(_ context.Context, _ repository.ListQuery) ([]domain.Event, error) {
	return r.events, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := r.byID[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return event, nil
}

func (r *stubEventRepo) FindByIDWithRelations(ctx context.Context, id uint) (domain.Event, error) {
	return r.FindByID(ctx, id)
}

func (r *stubEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = 1
	return event, nil
}

func (r *stubEventRepo) Update(_ context.Context, event domain.Event) (domain.Event, error) {
	r.updated = &event
	return event, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return ErrEventNotFound
	}
	return nil
}

func (r *stubEventRepo) Count(_ context.Context, _ repository.ListQuery) (int64, error) {
	return r.total, nil
}

func (r *stubEventRepo) CountByStatus(_ context.Context) (map[domain.EventStatus]int64, error) {
	return r.byStatus, nil
}

func (r *stubEventRepo) CountContactsByType(_ context.Context, _ uint) (map[domain.ContactType]int64, error) {
	return r.contactType, nil
}

func (r *stubEventRepo) CountSessions(_ context.Context, _ uint) (int64, error) {
	return r.sessions, nil
}

func (r *stubEventRepo) CountSpeakers(_ context.Context, _ uint) (int64, error) {
	return r.speakers, nil
}

func newTestEventService(repo *stubEventRepo, now time.Time) *EventService {
	svc := NewEventService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestEventService_ListEvents(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	repo := &stubEventRepo{
		events: []domain.Event{
			{ID: 1, Title: "Tech Summit", Status: domain.EventUpcoming},
			{ID: 2, Title: "Design Week", Status: domain.EventCancelled},
		},
		total:    41,
		sessions: 3,
		speakers: 2,
		contactType: map[domain.ContactType]int64{
			domain.ContactInvite:  5,
			domain.ContactPartner: 1,
			domain.ContactClient:  4,
		},
	}
	svc := newTestEventService(repo, now)

	page, err := svc.ListEvents(context.Background(), EventListQuery{
		Page: domain.PageRequest{Page: 2, Limit: 20},
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(41), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.Page)
	assert.Equal(t, 3, page.Meta.PageCount)

	first := page.Data[0]
	assert.Equal(t, "upcoming", first.DisplayedStatus)
	assert.Equal(t, 3, first.Statistics.Sessions)
	assert.Equal(t, 2, first.Statistics.Speakers)
	assert.Equal(t, 5, first.Statistics.Registrations)
	assert.Equal(t, 1, first.Statistics.Partners)
	assert.Equal(t, 4, first.Statistics.Clients)

	assert.Equal(t, "cancelled", page.Data[1].DisplayedStatus)
}

func TestEventService_GetEvent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("statistics derived from loaded relations", func(t *testing.T) {
		repo := &stubEventRepo{
			byID: map[uint]domain.Event{
				7: {
					ID:        7,
					Status:    domain.EventActive,
					StartDate: now.AddDate(0, 0, -1),
					EndDate:   now.AddDate(0, 0, 1),
					Sessions:  []domain.Session{{ID: 1}, {ID: 2}},
					Speakers:  []domain.Speaker{{ID: 1}},
					Contacts: []domain.Contact{
						{Type: domain.ContactInvite},
						{Type: domain.ContactInvite},
						{Type: domain.ContactPartner},
						{Type: domain.ContactClient},
						{Type: domain.ContactVisitor},
					},
				},
			},
		}
		svc := newTestEventService(repo, now)

		detail, err := svc.GetEvent(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, "started", detail.DisplayedStatus)
		assert.Equal(t, 2, detail.Statistics.Sessions)
		assert.Equal(t, 1, detail.Statistics.Speakers)
		assert.Equal(t, 2, detail.Statistics.Registrations)
		assert.Equal(t, 1, detail.Statistics.Partners)
		assert.Equal(t, 1, detail.Statistics.Clients)
	})

	t.Run("event without contacts yields all-zero counts", func(t *testing.T) {
		repo := &stubEventRepo{
			byID: map[uint]domain.Event{
				8: {ID: 8, Status: domain.EventUpcoming},
			},
		}
		svc := newTestEventService(repo, now)

		detail, err := svc.GetEvent(context.Background(), 8)
		require.NoError(t, err)

		assert.Zero(t, detail.Statistics.Registrations)
		assert.Zero(t, detail.Statistics.Partners)
		assert.Zero(t, detail.Statistics.Clients)
		assert.Zero(t, detail.Statistics.Sessions)
		assert.Zero(t, detail.Statistics.Speakers)
	})

	t.Run("missing event", func(t *testing.T) {
		svc := newTestEventService(&stubEventRepo{byID: map[uint]domain.Event{}}, now)

		_, err := svc.GetEvent(context.Background(), 99)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestEventService_CreateEvent(t *testing.T) {
	svc := newTestEventService(&stubEventRepo{}, time.Now())

	created, err := svc.CreateEvent(context.Background(), domain.Event{Title: "New Event"})
	require.NoError(t, err)

	assert.Equal(t, domain.EventUpcoming, created.Status)
}

func TestEventService_UpdateStatus(t *testing.T) {
	t.Run("valid transition persists", func(t *testing.T) {
		repo := &stubEventRepo{
			byID: map[uint]domain.Event{
				1: {ID: 1, Status: domain.EventUpcoming},
			},
		}
		svc := newTestEventService(repo, time.Now())

		updated, err := svc.UpdateStatus(context.Background(), 1, domain.EventActive)
		require.NoError(t, err)

		assert.Equal(t, domain.EventActive, updated.Status)
		require.NotNil(t, repo.updated)
		assert.Equal(t, domain.EventActive, repo.updated.Status)
	})

	t.Run("invalid transition rejected", func(t *testing.T) {
		repo := &stubEventRepo{
			byID: map[uint]domain.Event{
				1: {ID: 1, Status: domain.EventCompleted},
			},
		}
		svc := newTestEventService(repo, time.Now())

		_, err := svc.UpdateStatus(context.Background(), 1, domain.EventActive)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Nil(t, repo.updated, "no write on rejected transition")
	})
}

func TestEventService_UpdateEvent(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubEventRepo{
		byID: map[uint]domain.Event{
			1: {ID: 1, Status: domain.EventActive, CreatedAt: createdAt},
		},
	}
	svc := newTestEventService(repo, time.Now())

	updated, err := svc.UpdateEvent(context.Background(), domain.Event{ID: 1, Title: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, domain.EventActive, updated.Status, "status preserved on update")
	assert.Equal(t, createdAt, updated.CreatedAt)
}
