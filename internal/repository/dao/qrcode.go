package dao

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrQRCodeNotFound = errors.New("qr code not found")

type QRCode struct {
	ID          uint   `gorm:"primaryKey"`
	EventID     uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Content     string `gorm:"not null"`
	Type        string
	Foreground  string    `gorm:"not null;default:#000000"`
	Background  string    `gorm:"not null;default:#FFFFFF"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type QRCodeDAO struct {
	*CRUD[QRCode]
}

func NewQRCodeDAO(db *gorm.DB) *QRCodeDAO {
	return &QRCodeDAO{
		CRUD: NewCRUD[QRCode](db, ErrQRCodeNotFound,
			[]string{"title", "description", "content"},
			"title", "type", "created_at"),
	}
}
