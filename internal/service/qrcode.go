package service

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrQRCodeNotFound = repository.ErrQRCodeNotFound

type QRCodeRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.QRCode, error)
	FindByID(ctx context.Context, id uint) (domain.QRCode, error)
	Create(ctx context.Context, code domain.QRCode) (domain.QRCode, error)
	Update(ctx context.Context, code domain.QRCode) (domain.QRCode, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type QRCodeListQuery struct {
	Page    domain.PageRequest
	Search  string
	EventID uint
}

type QRCodeService struct {
	repo QRCodeRepository
}

func NewQRCodeService(repo QRCodeRepository) *QRCodeService {
	return &QRCodeService{
		repo: repo,
	}
}

func (s *QRCodeService) ListQRCodes(ctx context.Context, query QRCodeListQuery) (domain.Page[domain.QRCode], error) {
	req := query.Page.Clamp()

	filters := map[string]interface{}{}
	if query.EventID != 0 {
		filters["event_id"] = query.EventID
	}

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:   req.Limit,
		Offset:  req.Offset(),
		Search:  query.Search,
		Filters: filters,
	}, s.repo.FindAll, s.repo.Count)
}

func (s *QRCodeService) GetQRCode(ctx context.Context, id uint) (domain.QRCode, error) {
	code, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return code, nil
}

func (s *QRCodeService) CreateQRCode(ctx context.Context, code domain.QRCode) (domain.QRCode, error) {
	if code.Foreground == "" {
		code.Foreground = "#000000"
	}
	if code.Background == "" {
		code.Background = "#FFFFFF"
	}

	created, err := s.repo.Create(ctx, code)
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *QRCodeService) UpdateQRCode(ctx context.Context, code domain.QRCode) (domain.QRCode, error) {
	existing, err := s.repo.FindByID(ctx, code.ID)
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	code.EventID = existing.EventID
	code.CreatedAt = existing.CreatedAt

	updated, err := s.repo.Update(ctx, code)
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *QRCodeService) DeleteQRCode(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
