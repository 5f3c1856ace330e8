package service

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrSpeakerNotFound = repository.ErrSpeakerNotFound

type SpeakerRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Speaker, error)
	FindByID(ctx context.Context, id uint) (domain.Speaker, error)
	Create(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error)
	Update(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type SpeakerListQuery struct {
	Page   domain.PageRequest
	Search string
	SortBy string
	Order  string
}

type SpeakerService struct {
	repo SpeakerRepository
}

func NewSpeakerService(repo SpeakerRepository) *SpeakerService {
	return &SpeakerService{
		repo: repo,
	}
}

func (s *SpeakerService) ListSpeakers(ctx context.Context, query SpeakerListQuery) (domain.Page[domain.Speaker], error) {
	req := query.Page.Clamp()

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:  req.Limit,
		Offset: req.Offset(),
		SortBy: query.SortBy,
		Order:  query.Order,
		Search: query.Search,
	}, s.repo.FindAll, s.repo.Count)
}

func (s *SpeakerService) GetSpeaker(ctx context.Context, id uint) (domain.Speaker, error) {
	speaker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return speaker, nil
}

func (s *SpeakerService) CreateSpeaker(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error) {
	created, err := s.repo.Create(ctx, speaker)
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *SpeakerService) UpdateSpeaker(ctx context.Context, speaker domain.Speaker) (domain.Speaker, error) {
	existing, err := s.repo.FindByID(ctx, speaker.ID)
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	speaker.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, speaker)
	if err != nil {
		return domain.Speaker{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SpeakerService) DeleteSpeaker(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
