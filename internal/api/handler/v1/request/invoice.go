package request

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
)

type InvoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type CreateInvoiceRequest struct {
	Number    string               `json:"number"`
	ContactID uint                 `json:"contact_id"`
	Status    string               `json:"status"`
	Date      string               `json:"date"`
	DueDate   string               `json:"due_date"`
	Items     []InvoiceItemRequest `json:"items"`
}

func (req *CreateInvoiceRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContactID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.Status,
			validation.In("PAID", "PENDING", "OVERDUE", "CANCELLED")),
		validation.Field(&req.Date, validation.Required, validation.By(dateParseable)),
		validation.Field(&req.DueDate, validation.Required, validation.By(dateParseable)),
		validation.Field(&req.Items, validation.Required, validation.Each(validation.By(validInvoiceItem))),
	)
}

func validInvoiceItem(value interface{}) error {
	item, ok := value.(InvoiceItemRequest)
	if !ok {
		return fmt.Errorf("invalid invoice item")
	}

	return validation.ValidateStruct(&item,
		validation.Field(&item.Description, validation.Required, validation.Length(1, 500)),
		validation.Field(&item.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&item.UnitPrice, validation.Required, validation.Min(0.0)),
	)
}

type UpdateInvoiceRequest struct {
	CreateInvoiceRequest
}
