package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	ID          uint      `gorm:"primaryKey"`
	EventID     uint      `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null"`
	TimeRange   string
	Type        string `gorm:"not null"`
	Location    string
	Speakers    []Speaker `gorm:"many2many:session_speakers;"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type SessionDAO struct {
	*CRUD[Session]
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{
		CRUD: NewCRUD[Session](db, ErrSessionNotFound,
			[]string{"title", "description", "location"},
			"title", "date", "type", "created_at"),
		db: db,
	}
}

// FindByIDWithSpeakers loads a session with its speaker relations.
func (d *SessionDAO) FindByIDWithSpeakers(ctx context.Context, id uint) (Session, error) {
	var session Session

	result := d.db.WithContext(ctx).Preload("Speakers").First(&session, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}

		return Session{}, result.Error
	}

	return session, nil
}

// FindAllWithSpeakers lists sessions with speakers preloaded, filtered and
// paginated through the usual options.
func (d *SessionDAO) FindAllWithSpeakers(ctx context.Context, opts ListOptions) ([]Session, error) {
	q := d.db.WithContext(ctx).Preload("Speakers").Order("date asc")

	for col, val := range opts.Conds {
		q = q.Where(col+" = ?", val)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}

	var sessions []Session
	if result := q.Find(&sessions); result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

// ReplaceSpeakers sets the session's speaker associations to exactly the
// given set.
func (d *SessionDAO) ReplaceSpeakers(ctx context.Context, session Session, speakerIDs []uint) error {
	speakers := make([]Speaker, len(speakerIDs))
	for i, id := range speakerIDs {
		speakers[i] = Speaker{ID: id}
	}

	return d.db.WithContext(ctx).
		Model(&session).
		Association("Speakers").
		Replace(speakers)
}
