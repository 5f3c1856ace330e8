package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

var ErrInvoiceNotFound = repository.ErrInvoiceNotFound

type InvoiceRepository interface {
	FindAll(ctx context.Context, q repository.ListQuery) ([]domain.Invoice, error)
	FindByID(ctx context.Context, id uint) (domain.Invoice, error)
	Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	Update(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, q repository.ListQuery) (int64, error)
}

type InvoiceListQuery struct {
	Page    domain.PageRequest
	EventID uint
	Status  domain.InvoiceStatus
}

type InvoiceService struct {
	repo InvoiceRepository
}

func NewInvoiceService(repo InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		repo: repo,
	}
}

func (s *InvoiceService) ListInvoices(ctx context.Context, query InvoiceListQuery) (domain.Page[domain.Invoice], error) {
	req := query.Page.Clamp()

	filters := map[string]interface{}{}
	if query.EventID != 0 {
		filters["event_id"] = query.EventID
	}
	if query.Status != "" {
		filters["status"] = string(query.Status)
	}

	return fetchPage(ctx, req, repository.ListQuery{
		Limit:   req.Limit,
		Offset:  req.Offset(),
		Filters: filters,
	}, s.repo.FindAll, s.repo.Count)
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (domain.Invoice, error) {
	invoice, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return invoice, nil
}

// CreateInvoice generates a number when none is given and recomputes the
// amount from the line items.
func (s *InvoiceService) CreateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	if invoice.Number == "" {
		invoice.Number = newInvoiceNumber()
	}
	if invoice.Status == "" {
		invoice.Status = domain.InvoicePending
	}
	invoice.Amount = invoice.Total()

	created, err := s.repo.Create(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	existing, err := s.repo.FindByID(ctx, invoice.ID)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	invoice.Number = existing.Number
	invoice.EventID = existing.EventID
	invoice.CreatedAt = existing.CreatedAt
	invoice.Amount = invoice.Total()

	updated, err := s.repo.Update(ctx, invoice)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
