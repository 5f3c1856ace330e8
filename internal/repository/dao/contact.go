package dao

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

type Contact struct {
	ID           uint   `gorm:"primaryKey"`
	EventID      uint   `gorm:"not null;index"`
	Type         string `gorm:"not null;index"`
	Name         string `gorm:"not null"`
	Email        string
	Phone        string
	Organization string
	Website      string
	CountryID    *uint
	Country      *Country `gorm:"foreignKey:CountryID"`
	Status       string   `gorm:"not null;default:PENDING"`
	Notes        string
	Tier         string
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type ContactDAO struct {
	*CRUD[Contact]
	db *gorm.DB
}

func NewContactDAO(db *gorm.DB) *ContactDAO {
	return &ContactDAO{
		CRUD: NewCRUD[Contact](db, ErrContactNotFound,
			[]string{"name", "email", "organization"},
			"name", "email", "type", "status", "created_at"),
		db: db,
	}
}

// FindByIDWithCountry loads a contact together with its country relation.
func (d *ContactDAO) FindByIDWithCountry(ctx context.Context, id uint) (Contact, error) {
	var contact Contact

	result := d.db.WithContext(ctx).Preload("Country").First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contact{}, ErrContactNotFound
		}

		return Contact{}, result.Error
	}

	return contact, nil
}

// InsertWithCountry resolves the country by name (creating it when missing)
// and inserts the contact referencing it, all inside one transaction so a
// failed contact insert cannot leave an orphaned country row.
func (d *ContactDAO) InsertWithCountry(ctx context.Context, contact Contact, countryName, countryCode string) (Contact, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ContactDAO.InsertWithCountry")
	defer span.End()

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if countryName != "" {
			var country Country
			result := tx.Where("name = ?", countryName).First(&country)
			if result.Error != nil {
				if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return result.Error
				}
				country = Country{Name: countryName, Code: countryCode}
				if result = tx.Create(&country); result.Error != nil {
					return result.Error
				}
			}
			contact.CountryID = &country.ID
			contact.Country = &country
		}

		return tx.Create(&contact).Error
	})
	if err != nil {
		span.RecordError(err)
		return Contact{}, err
	}

	return contact, nil
}

// CountByCountry counts an event's contacts grouped by country name.
func (d *ContactDAO) CountByCountry(ctx context.Context, eventID uint) ([]CountryRow, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "ContactDAO.CountByCountry")
	defer span.End()

	var rows []CountryRow

	result := d.db.WithContext(ctx).
		Model(&Contact{}).
		Select("countries.name as country, count(*) as count").
		Joins("JOIN countries ON countries.id = contacts.country_id").
		Where("contacts.event_id = ?", eventID).
		Group("countries.name").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

type CountryRow struct {
	Country string
	Count   int64
}
