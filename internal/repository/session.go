package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrSessionNotFound = dao.ErrSessionNotFound

type SessionDAO interface {
	FindAllWithSpeakers(ctx context.Context, opts dao.ListOptions) ([]dao.Session, error)
	FindByIDWithSpeakers(ctx context.Context, id uint) (dao.Session, error)
	Insert(ctx context.Context, session dao.Session) (dao.Session, error)
	Update(ctx context.Context, session dao.Session) (dao.Session, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
	ReplaceSpeakers(ctx context.Context, session dao.Session, speakerIDs []uint) error
}

type SessionRepository struct {
	dao SessionDAO
}

func NewSessionRepository(dao SessionDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Session, error) {
	found, err := r.dao.FindAllWithSpeakers(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllWithSpeakers -> %w", err)
	}

	sessions := make([]domain.Session, len(found))
	for i, s := range found {
		sessions[i] = sessionDaoToDomain(s)
	}

	return sessions, nil
}

func (r *SessionRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (domain.Session, error) {
	found, err := r.dao.FindByIDWithSpeakers(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.FindByIDWithSpeakers -> %w", err)
	}

	return sessionDaoToDomain(found), nil
}

func (r *SessionRepository) Create(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error) {
	daoSession := sessionDomainToDao(session)
	for _, id := range speakerIDs {
		daoSession.Speakers = append(daoSession.Speakers, dao.Speaker{ID: id})
	}

	created, err := r.dao.Insert(ctx, daoSession)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.FindByID(ctx, created.ID)
}

func (r *SessionRepository) Update(ctx context.Context, session domain.Session, speakerIDs []uint) (domain.Session, error) {
	daoSession := sessionDomainToDao(session)

	updated, err := r.dao.Update(ctx, daoSession)
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	if speakerIDs != nil {
		if err = r.dao.ReplaceSpeakers(ctx, updated, speakerIDs); err != nil {
			return domain.Session{}, fmt.Errorf("r.dao.ReplaceSpeakers -> %w", err)
		}
	}

	return r.FindByID(ctx, updated.ID)
}

func (r *SessionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func sessionDaoToDomain(s dao.Session) domain.Session {
	session := domain.Session{
		ID:          s.ID,
		EventID:     s.EventID,
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Date,
		TimeRange:   s.TimeRange,
		Type:        domain.SessionType(s.Type),
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}

	for _, sp := range s.Speakers {
		session.Speakers = append(session.Speakers, speakerDaoToDomain(sp))
	}

	return session
}

func sessionDomainToDao(s domain.Session) dao.Session {
	return dao.Session{
		ID:          s.ID,
		EventID:     s.EventID,
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Date,
		TimeRange:   s.TimeRange,
		Type:        string(s.Type),
		Location:    s.Location,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
