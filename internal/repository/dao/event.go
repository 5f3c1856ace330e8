package dao

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Organizers  []string  `gorm:"serializer:json"`
	Themes      []string  `gorm:"serializer:json"`
	Goals       string
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Status      string    `gorm:"not null;default:UPCOMING;index"`
	LogoURL     string
	CoverURL    string

	Sessions []Session `gorm:"foreignKey:EventID"`
	Speakers []Speaker `gorm:"many2many:event_speakers;"`
	Contacts []Contact `gorm:"foreignKey:EventID"`
	QRCodes  []QRCode  `gorm:"foreignKey:EventID"`
	Invoices []Invoice `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type StatusCount struct {
	Status string
	Count  int64
}

type TypeCount struct {
	Type  string
	Count int64
}

type EventDAO struct {
	*CRUD[Event]
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		CRUD: NewCRUD[Event](db, ErrEventNotFound,
			[]string{"title", "description", "location"},
			"title", "start_date", "end_date", "location", "status", "created_at"),
		db: db,
	}
}

// FindByIDWithRelations loads an event with every owned collection so the
// service layer can derive counts from live relations.
func (d *EventDAO) FindByIDWithRelations(ctx context.Context, id uint) (Event, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "EventDAO.FindByIDWithRelations")
	defer span.End()

	var event Event

	result := d.db.WithContext(ctx).
		Preload("Sessions.Speakers").
		Preload("Speakers").
		Preload("Contacts.Country").
		Preload("QRCodes").
		Preload("Invoices.Items").
		First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		span.RecordError(result.Error)
		return Event{}, result.Error
	}

	return event, nil
}

// CountByStatus counts events grouped by their stored status.
func (d *EventDAO) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "EventDAO.CountByStatus")
	defer span.End()

	var counts []StatusCount

	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&counts)
	if result.Error != nil {
		span.RecordError(result.Error)
		return nil, result.Error
	}

	return counts, nil
}

// CountContactsByType counts an event's contacts grouped by the type
// discriminator.
func (d *EventDAO) CountContactsByType(ctx context.Context, eventID uint) ([]TypeCount, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "EventDAO.CountContactsByType")
	defer span.End()

	var counts []TypeCount

	result := d.db.WithContext(ctx).
		Model(&Contact{}).
		Select("type, count(*) as count").
		Where("event_id = ?", eventID).
		Group("type").
		Find(&counts)
	if result.Error != nil {
		span.RecordError(result.Error)
		return nil, result.Error
	}

	return counts, nil
}

// CountSessions and CountSpeakers back the derived statistics on list rows,
// where the nested collections are not loaded.
func (d *EventDAO) CountSessions(ctx context.Context, eventID uint) (int64, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "EventDAO.CountSessions")
	defer span.End()

	var count int64
	result := d.db.WithContext(ctx).Model(&Session{}).Where("event_id = ?", eventID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (d *EventDAO) CountSpeakers(ctx context.Context, eventID uint) (int64, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "EventDAO.CountSpeakers")
	defer span.End()

	var count int64
	result := d.db.WithContext(ctx).
		Table("event_speakers").
		Where("event_id = ?", eventID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
