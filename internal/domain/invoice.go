package domain

import "time"

type InvoiceStatus string

const (
	InvoicePaid      InvoiceStatus = "PAID"
	InvoicePending   InvoiceStatus = "PENDING"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

type InvoiceItem struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type Invoice struct {
	ID        uint          `json:"id"`
	Number    string        `json:"number"`
	EventID   uint          `json:"event_id"`
	ContactID uint          `json:"contact_id"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	Date      time.Time     `json:"date"`
	DueDate   time.Time     `json:"due_date"`
	Items     []InvoiceItem `json:"items,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Total sums the line item totals.
func (i Invoice) Total() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.Total
	}
	return total
}
