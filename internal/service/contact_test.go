package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

type stubContactRepo struct {
	contacts  []domain.Contact
	total     int64
	byID      map[uint]domain.Contact
	created   *domain.Contact
	updated   *domain.Contact
	country   string
	byCountry []domain.CountryCount
}

func (r *stubContactRepo) FindAll(_ context.Context, _ repository.ListQuery) ([]domain.Contact, error) {
	return r.contacts, nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id uint) (domain.Contact, error) {
	contact, ok := r.byID[id]
	if !ok {
		return domain.Contact{}, ErrContactNotFound
	}
	return contact, nil
}

func (r *stubContactRepo) Create(_ context.Context, contact domain.Contact, countryName, _ string) (domain.Contact, error) {
	contact.ID = 10
	if countryName != "" {
		contact.Country = &domain.Country{ID: 1, Name: countryName}
	}
	r.created = &contact
	r.country = countryName
	return contact, nil
}

func (r *stubContactRepo) Update(_ context.Context, contact domain.Contact) (domain.Contact, error) {
	r.updated = &contact
	return contact, nil
}

func (r *stubContactRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.byID[id]; !ok {
		return ErrContactNotFound
	}
	return nil
}

func (r *stubContactRepo) Count(_ context.Context, _ repository.ListQuery) (int64, error) {
	return r.total, nil
}

func (r *stubContactRepo) CountByCountry(_ context.Context, _ uint) ([]domain.CountryCount, error) {
	return r.byCountry, nil
}

type stubContactEventRepo struct {
	events map[uint]domain.Event
}

func (r *stubContactEventRepo) FindByID(_ context.Context, id uint) (domain.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return domain.Event{}, ErrEventNotFound
	}
	return event, nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) SendInvite(_ context.Context, to, _, _ string) error {
	m.sent = append(m.sent, to)
	return nil
}

func TestContactService_CreateContact(t *testing.T) {
	eventRepo := &stubContactEventRepo{
		events: map[uint]domain.Event{5: {ID: 5, Title: "Tech Summit"}},
	}

	t.Run("invite with email triggers notification", func(t *testing.T) {
		repo := &stubContactRepo{}
		mailer := &recordingMailer{}
		svc := NewContactService(repo, eventRepo, mailer)

		created, err := svc.CreateContact(context.Background(), domain.Contact{
			EventID: 5,
			Type:    domain.ContactInvite,
			Name:    "Ada",
			Email:   "ada@example.com",
		}, "France", "FR")
		require.NoError(t, err)

		assert.Equal(t, domain.ContactPending, created.Status, "status defaults to pending")
		assert.Equal(t, "France", repo.country)
		require.NotNil(t, created.Country)
		assert.Equal(t, []string{"ada@example.com"}, mailer.sent)
	})

	t.Run("partner create sends no mail", func(t *testing.T) {
		repo := &stubContactRepo{}
		mailer := &recordingMailer{}
		svc := NewContactService(repo, eventRepo, mailer)

		_, err := svc.CreateContact(context.Background(), domain.Contact{
			EventID: 5,
			Type:    domain.ContactPartner,
			Name:    "Globex",
			Email:   "contact@globex.example.com",
		}, "", "")
		require.NoError(t, err)

		assert.Empty(t, mailer.sent)
	})

	t.Run("missing event rejects the create", func(t *testing.T) {
		repo := &stubContactRepo{}
		svc := NewContactService(repo, eventRepo, &recordingMailer{})

		_, err := svc.CreateContact(context.Background(), domain.Contact{
			EventID: 999,
			Type:    domain.ContactInvite,
			Name:    "Nobody",
		}, "", "")

		assert.ErrorIs(t, err, ErrEventNotFound)
		assert.Nil(t, repo.created)
	})
}

func TestContactService_ApproveContact(t *testing.T) {
	repo := &stubContactRepo{
		byID: map[uint]domain.Contact{
			3: {ID: 3, Status: domain.ContactPending},
		},
	}
	svc := NewContactService(repo, &stubContactEventRepo{}, nil)

	updated, err := svc.ApproveContact(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, domain.ContactApproved, updated.Status)
}

func TestContactService_RejectContact(t *testing.T) {
	t.Run("pending contact rejected", func(t *testing.T) {
		repo := &stubContactRepo{
			byID: map[uint]domain.Contact{
				3: {ID: 3, Status: domain.ContactPending},
			},
		}
		svc := NewContactService(repo, &stubContactEventRepo{}, nil)

		updated, err := svc.RejectContact(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, domain.ContactRejected, updated.Status)
	})

	t.Run("missing contact", func(t *testing.T) {
		svc := NewContactService(&stubContactRepo{byID: map[uint]domain.Contact{}}, &stubContactEventRepo{}, nil)

		_, err := svc.RejectContact(context.Background(), 42)
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

func TestContactService_ListContacts(t *testing.T) {
	repo := &stubContactRepo{
		contacts: []domain.Contact{{ID: 1}, {ID: 2}, {ID: 3}},
		total:    3,
	}
	svc := NewContactService(repo, &stubContactEventRepo{}, nil)

	page, err := svc.ListContacts(context.Background(), ContactListQuery{
		Page:    domain.PageRequest{},
		EventID: 5,
	})
	require.NoError(t, err)

	assert.Len(t, page.Data, 3)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, domain.DefaultLimit, page.Meta.Limit)
	assert.Equal(t, 1, page.Meta.PageCount)
}
