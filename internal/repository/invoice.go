package repository

import (
	"context"
	"fmt"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository/dao"
)

var ErrInvoiceNotFound = dao.ErrInvoiceNotFound

type InvoiceDAO interface {
	FindAllWithItems(ctx context.Context, opts dao.ListOptions) ([]dao.Invoice, error)
	FindByIDWithItems(ctx context.Context, id uint) (dao.Invoice, error)
	Insert(ctx context.Context, invoice dao.Invoice) (dao.Invoice, error)
	UpdateWithItems(ctx context.Context, invoice dao.Invoice) (dao.Invoice, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context, opts dao.ListOptions) (int64, error)
}

type InvoiceRepository struct {
	dao InvoiceDAO
}

func NewInvoiceRepository(dao InvoiceDAO) *InvoiceRepository {
	return &InvoiceRepository{
		dao: dao,
	}
}

func (r *InvoiceRepository) FindAll(ctx context.Context, q ListQuery) ([]domain.Invoice, error) {
	found, err := r.dao.FindAllWithItems(ctx, q.toDAO())
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllWithItems -> %w", err)
	}

	invoices := make([]domain.Invoice, len(found))
	for i, inv := range found {
		invoices[i] = invoiceDaoToDomain(inv)
	}

	return invoices, nil
}

func (r *InvoiceRepository) Count(ctx context.Context, q ListQuery) (int64, error) {
	total, err := r.dao.Count(ctx, q.toDAO())
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return total, nil
}

func (r *InvoiceRepository) FindByID(ctx context.Context, id uint) (domain.Invoice, error) {
	found, err := r.dao.FindByIDWithItems(ctx, id)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.FindByIDWithItems -> %w", err)
	}

	return invoiceDaoToDomain(found), nil
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	created, err := r.dao.Insert(ctx, invoiceDomainToDao(invoice))
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return invoiceDaoToDomain(created), nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	updated, err := r.dao.UpdateWithItems(ctx, invoiceDomainToDao(invoice))
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("r.dao.UpdateWithItems -> %w", err)
	}

	return invoiceDaoToDomain(updated), nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func invoiceDaoToDomain(i dao.Invoice) domain.Invoice {
	invoice := domain.Invoice{
		ID:        i.ID,
		Number:    i.Number,
		EventID:   i.EventID,
		ContactID: i.ContactID,
		Amount:    i.Amount,
		Status:    domain.InvoiceStatus(i.Status),
		Date:      i.Date,
		DueDate:   i.DueDate,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}

	for _, item := range i.Items {
		invoice.Items = append(invoice.Items, domain.InvoiceItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return invoice
}

func invoiceDomainToDao(i domain.Invoice) dao.Invoice {
	invoice := dao.Invoice{
		ID:        i.ID,
		Number:    i.Number,
		EventID:   i.EventID,
		ContactID: i.ContactID,
		Amount:    i.Amount,
		Status:    string(i.Status),
		Date:      i.Date,
		DueDate:   i.DueDate,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}

	for _, item := range i.Items {
		invoice.Items = append(invoice.Items, dao.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	return invoice
}
