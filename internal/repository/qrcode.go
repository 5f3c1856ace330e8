package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrQRCodeNotFound = dao.ErrQRCodeNotFound

type QRCodeDAO interface {
	FindAll(ctx context.Context, opts dao.ListOptions) ([]dao.QRCode, error)
	FindByID(ctx context.Context, id uint) (dao.QRCode, error)
	Insert(ctx context.Context, code dao.QRCode) (dao.QRCode, error)
	Update(ctx context.Context, code dao.QRCode) (dao.QRCode, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
}

type QRCodeRepository struct {
	dao QRCodeDAO
}

func NewQRCodeRepository(dao QRCodeDAO) *QRCodeRepository {
	return &QRCodeRepository{
		dao: dao,
	}
}

func (r *QRCodeRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.QRCode, error) {
	found, err := r.dao.FindAll(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	codes := make([]domain.QRCode, len(found))
	for i, c := range found {
		codes[i] = qrCodeDaoToDomain(c)
	}

	return codes, nil
}

func (r *QRCodeRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *QRCodeRepository) FindByID(ctx context.Context, id uint) (domain.QRCode, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return qrCodeDaoToDomain(found), nil
}

func (r *QRCodeRepository) Create(ctx context.Context, code domain.QRCode) (domain.QRCode, error) {
	created, err := r.dao.Insert(ctx, qrCodeDomainToDao(code))
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return qrCodeDaoToDomain(created), nil
}

func (r *QRCodeRepository) Update(ctx context.Context, code domain.QRCode) (domain.QRCode, error) {
	updated, err := r.dao.Update(ctx, qrCodeDomainToDao(code))
	if err != nil {
		return domain.QRCode{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return qrCodeDaoToDomain(updated), nil
}

func (r *QRCodeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func qrCodeDaoToDomain(c dao.QRCode) domain.QRCode {
	return domain.QRCode{
		ID:          c.ID,
		EventID:     c.EventID,
		Title:       c.Title,
		Description: c.Description,
		Content:     c.Content,
		Type:        c.Type,
		Foreground:  c.Foreground,
		Background:  c.Background,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func qrCodeDomainToDao(c domain.QRCode) dao.QRCode {
	return dao.QRCode{
		ID:          c.ID,
		EventID:     c.EventID,
		Title:       c.Title,
		Description: c.Description,
		Content:     c.Content,
		Type:        c.Type,
		Foreground:  c.Foreground,
		Background:  c.Background,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
