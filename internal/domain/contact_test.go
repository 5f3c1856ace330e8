package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContact_Approve(t *testing.T) {
	pending := Contact{Status: ContactPending}
	pending.Approve()
	assert.Equal(t, ContactApproved, pending.Status)

	rejected := Contact{Status: ContactRejected}
	rejected.Approve()
	assert.Equal(t, ContactRejected, rejected.Status, "only pending contacts change state")
}

func TestContact_Reject(t *testing.T) {
	pending := Contact{Status: ContactPending}
	pending.Reject()
	assert.Equal(t, ContactRejected, pending.Status)

	approved := Contact{Status: ContactApproved}
	approved.Reject()
	assert.Equal(t, ContactApproved, approved.Status, "only pending contacts change state")
}

func TestInvoice_Total(t *testing.T) {
	invoice := Invoice{
		Items: []InvoiceItem{
			{Quantity: 2, UnitPrice: 100, Total: 200},
			{Quantity: 1, UnitPrice: 49.5, Total: 49.5},
		},
	}

	assert.InDelta(t, 249.5, invoice.Total(), 0.001)
	assert.Zero(t, Invoice{}.Total())
}
