package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrSpeakerNotFound = dao.ErrSpeakerNotFound

type SpeakerDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.Speaker, error)
	FindByID(ctx context.Context, id uint) (dao.Speaker, error)
	Insert(ctx context.Context, speaker dao.Speaker) (dao.Speaker, error)
	Update(ctx context.Context, speaker dao.Speaker) (dao.Speaker, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
}

type SpeakerRepository struct {
	dao SpeakerDAO
}

func NewSpeakerRepository(dao SpeakerDAO) *SpeakerRepository {
	return &SpeakerRepository{
		dao: dao,
	}
}

func (r *SpeakerRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Speaker, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	speakers := make([]domain.Speaker, len(found))
	for i, s := range found {
		speakers[i] = speakerDaoToDomain(s)
	}

	return speakers, nil
}

func (r *SpeakerRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *SpeakerRepository) FindByID(ctx context.Context, id uint) (domain.Speaker, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return speakerDaoToDomain(found), nil
}

func (r *SpeakerRepository) Create(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error) {
	created, err := r.dao.Insert(ctx, speakerDomainToDao(speaker))
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return speakerDaoToDomain(created), nil
}

func (r *SpeakerRepository) Update(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error) {
	updated, err := r.dao.Update(ctx, speakerDomainToDao(speaker))
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return speakerDaoToDomain(updated), nil
}

func (r *SpeakerRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func speakerDaoToDomain(s dao.Speaker) domain.Speaker {
	return domain.Speaker{
		ID:           s.ID,
		Name:         s.Name,
		Title:        s.Title,
		Organization: s.Organization,
		Bio:          s.Bio,
		AvatarURL:    s.AvatarURL,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func speakerDomainToDao(s domain.Speaker) dao.Speaker {
	return dao.Speaker{
		ID:           s.ID,
		Name:         s.Name,
		Title:        s.Title,
		Organization: s.Organization,
		Bio:          s.Bio,
		AvatarURL:    s.AvatarURL,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
