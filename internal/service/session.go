package service

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrSessionNotFound = repository.ErrSessionNotFound

type SessionRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Session, error)
	FindByID(ctx context.Context, id uint) (domain.Session, error)
	Create(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error)
	Update(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type SessionEventRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

type SessionListQuery struct {
	Page    domain.PageRequest
	EventID uint
	Type    domain.SessionType
}

type SessionService struct {
	repo      SessionRepository
	eventRepo SessionEventRepository
}

func NewSessionService(repo SessionRepository, eventRepo SessionEventRepository) *SessionService {
	return &SessionService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *SessionService) ListSessions(ctx context.Context, query SessionListQuery) (domain.Page[domain.Session], error) {
	req := query.Page.Clamp()

	filters := map[string]interface{}{}
	if query.EventID != 0 {
		filters["event_id"] = query.EventID
	}
	if query.Type != "" {
		filters["type"] = string(query.Type)
	}

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:   req.Limit,
		Offset:  req.Offset(),
		Filters: filters,
	}, s.repo.FindAll, s.repo.Count)
}

func (s *SessionService) GetSession(ctx context.Context, id uint) (domain.Session, error) {
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return session, nil
}

func (s *SessionService) CreateSession(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error) {
	if _, err := s.eventRepo.FindByID(ctx, session.EventID); err != nil {
		return domain.Session{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, session, speakerIDs)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SessionService) UpdateSession(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error) {
	existing, err := s.repo.FindByID(ctx, session.ID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	session.EventID = existing.EventID
	session.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, session, speakerIDs)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
