package domain

import "time"

type SessionType string

const (
	SessionWorkshop   SessionType = "WORKSHOP"
	SessionPanel      SessionType = "PANEL"
	SessionKeynote    SessionType = "KEYNOTE"
	SessionNetworking SessionType = "NETWORKING"
	SessionOther      SessionType = "OTHER"
)

// Session is a side-event item belonging to one event. TimeRange is a
// free-text range string such as "14:00 - 16:00".
type Session struct {
	ID          uint        `json:"id"`
	EventID     uint        `json:"event_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	TimeRange   string      `json:"time_range"`
	Type        SessionType `json:"type"`
	Location    string      `json:"location"`
	Speakers    []Speaker   `json:"speakers,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
