package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk-api/internal/domain"
	"github.com/eventdesk/eventdesk-api/internal/repository"
)

type stubInvoiceRepo struct {
	byID map[uint]domain.Invoice
}

func (r *stubInvoiceRepo) FindAll(_ context.Context, _ repository.ListQuery) ([]domain.Invoice, error) {
	return nil, nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uint) (domain.Invoice, error) {
	invoice, ok := r.byID[id]
	if !ok {
		return domain.Invoice{}, ErrInvoiceNotFound
	}
	return invoice, nil
}

func (r *stubInvoiceRepo) Create(_ context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	invoice.ID = 1
	return invoice, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, invoice domain.Invoice) (domain.Invoice, error) {
	return invoice, nil
}

func (r *stubInvoiceRepo) Delete(_ context.Context, _ uint) error {
	return nil
}

func (r *stubInvoiceRepo) Count(_ context.Context, _ repository.ListQuery) (int64, error) {
	return 0, nil
}

func TestInvoiceService_CreateInvoice(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceRepo{})

	created, err := svc.CreateInvoice(context.Background(), domain.Invoice{
		Items: []domain.InvoiceItem{
			{Quantity: 2, UnitPrice: 100, Total: 200},
			{Quantity: 3, UnitPrice: 10, Total: 30},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.Number, "INV-"), "number generated when absent")
	assert.Len(t, created.Number, len("INV-")+8)
	assert.Equal(t, domain.InvoicePending, created.Status)
	assert.InDelta(t, 230, created.Amount, 0.001, "amount computed from items")
}

func TestInvoiceService_CreateInvoice_KeepsGivenNumber(t *testing.T) {
	svc := NewInvoiceService(&stubInvoiceRepo{})

	created, err := svc.CreateInvoice(context.Background(), domain.Invoice{
		Number: "INV-CUSTOM01",
		Status: domain.InvoicePaid,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-CUSTOM01", created.Number)
	assert.Equal(t, domain.InvoicePaid, created.Status)
}

func TestInvoiceService_UpdateInvoice(t *testing.T) {
	repo := &stubInvoiceRepo{
		byID: map[uint]domain.Invoice{
			1: {ID: 1, Number: "INV-AAAA1111", EventID: 9},
		},
	}
	svc := NewInvoiceService(repo)

	updated, err := svc.UpdateInvoice(context.Background(), domain.Invoice{
		ID:     1,
		Number: "INV-HACKED",
		Status: domain.InvoiceOverdue,
		Items: []domain.InvoiceItem{
			{Quantity: 1, UnitPrice: 75, Total: 75},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-AAAA1111", updated.Number, "number never changes")
	assert.Equal(t, uint(9), updated.EventID, "owning event never changes")
	assert.InDelta(t, 75, updated.Amount, 0.001)
}
