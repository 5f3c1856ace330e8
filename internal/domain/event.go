package domain

import "time"

type EventStatus string

const (
	EventUpcoming  EventStatus = "UPCOMING"
	EventActive    EventStatus = "ACTIVE"
	EventCompleted EventStatus = "COMPLETED"
	EventCancelled EventStatus = "CANCELLED"
)

// CanTransitionTo reports whether the stored status may move to next.
// Allowed moves are UPCOMING -> ACTIVE -> COMPLETED, or any -> CANCELLED.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	if next == EventCancelled {
		return true
	}
	switch s {
	case EventUpcoming:
		return next == EventActive
	case EventActive:
		return next == EventCompleted
	}
	return false
}

type Event struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Organizers  []string    `json:"organizers"`
	Themes      []string    `json:"themes"`
	Goals       string      `json:"goals"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     time.Time   `json:"end_date"`
	Location    string      `json:"location"`
	Status      EventStatus `json:"status"`
	LogoURL     string      `json:"logo_url"`
	CoverURL    string      `json:"cover_url"`

	Sessions []Session `json:"sessions,omitempty"`
	Speakers []Speaker `json:"speakers,omitempty"`
	Contacts []Contact `json:"contacts,omitempty"`
	QRCodes  []QRCode  `json:"qr_codes,omitempty"`
	Invoices []Invoice `json:"invoices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayStatus derives the label shown for an event. CANCELLED, COMPLETED
// and UPCOMING pass through; ACTIVE is refined against the event dates at
// call time. The result is never persisted.
func (e Event) DisplayStatus(now time.Time) string {
	switch e.Status {
	case EventCancelled:
		return "cancelled"
	case EventCompleted:
		return "completed"
	case EventUpcoming:
		return "upcoming"
	case EventActive:
		if now.Before(e.StartDate) {
			return "upcoming"
		}
		if now.After(e.EndDate) {
			return "completed"
		}
		return "started"
	}
	return string(e.Status)
}

// EventStatistics holds counts derived from an event's live relations.
// Recomputed on every read.
type EventStatistics struct {
	Sessions      int `json:"sessions"`
	Speakers      int `json:"speakers"`
	Partners      int `json:"partners"`
	Registrations int `json:"registrations"`
	Clients       int `json:"clients"`
}

// EventDetail is an event with its derived statistics and display status.
type EventDetail struct {
	Event
	DisplayedStatus string          `json:"displayed_status"`
	Statistics      EventStatistics `json:"statistics"`
}
