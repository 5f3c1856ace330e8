package dao

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSpeakerNotFound = errors.New("speaker not found")

type Speaker struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Title        string
	Organization string
	Bio          string
	AvatarURL    string
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type SpeakerDAO struct {
	*CRUD[Speaker]
	db *gorm.DB
}

func NewSpeakerDAO(db *gorm.DB) *SpeakerDAO {
	return &SpeakerDAO{
		CRUD: NewCRUD[Speaker](db, ErrSpeakerNotFound,
			[]string{"name", "organization", "title"},
			"name", "organization", "created_at"),
		db: db,
	}
}
