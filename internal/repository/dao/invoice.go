package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrInvoiceNotFound = errors.New("invoice not found")

type Invoice struct {
	ID        uint    `gorm:"primaryKey"`
	Number    string  `gorm:"unique;not null"`
	EventID   uint    `gorm:"not null;index"`
	ContactID uint    `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`
	Status    string  `gorm:"not null;default:PENDING"`
	Date      time.Time
	DueDate   time.Time
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID"`
	CreatedAt time.Time     `gorm:"not null"`
	UpdatedAt time.Time     `gorm:"not null"`
}

type InvoiceItem struct {
	ID          uint    `gorm:"primaryKey"`
	InvoiceID   uint    `gorm:"not null;index"`
	Description string  `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	UnitPrice   float64 `gorm:"not null"`
	Total       float64 `gorm:"not null"`
}

type InvoiceDAO struct {
	*CRUD[Invoice]
	db *gorm.DB
}

func NewInvoiceDAO(db *gorm.DB) *InvoiceDAO {
	return &InvoiceDAO{
		CRUD: NewCRUD[Invoice](db, ErrInvoiceNotFound,
			[]string{"number"},
			"number", "amount", "status", "date", "due_date", "created_at"),
		db: db,
	}
}

// FindByIDWithItems loads an invoice with its line items.
func (d *InvoiceDAO) FindByIDWithItems(ctx context.Context, id uint) (Invoice, error) {
	var invoice Invoice

	result := d.db.WithContext(ctx).Preload("Items").First(&invoice, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invoice{}, ErrInvoiceNotFound
		}

		return Invoice{}, result.Error
	}

	return invoice, nil
}

// FindAllWithItems lists invoices with line items preloaded.
func (d *InvoiceDAO) FindAllWithItems(ctx context.Context, opts ListOptions) ([]Invoice, error) {
	q := d.db.WithContext(ctx).Preload("Items").Order("date desc")

	for col, val := range opts.Conds {
		q = q.Where(col+" = ?", val)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var invoices []Invoice
	if result := q.Find(&invoices); result.Error != nil {
		return nil, result.Error
	}

	return invoices, nil
}

// UpdateWithItems saves the invoice and replaces its line items in one
// transaction.
func (d *InvoiceDAO) UpdateWithItems(ctx context.Context, invoice Invoice) (Invoice, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("invoice_id = ?", invoice.ID).Delete(&InvoiceItem{}); result.Error != nil {
			return result.Error
		}

		return tx.Save(&invoice).Error
	})
	if err != nil {
		return Invoice{}, err
	}

	return invoice, nil
}
