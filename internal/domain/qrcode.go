package domain

import "time"

type QRCode struct {
	ID          uint      `json:"id"`
	EventID     uint      `json:"event_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	Foreground  string    `json:"foreground"`
	Background  string    `json:"background"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
