package domain

import "time"

type ContactType string

const (
	ContactInvite  ContactType = "INVITE"
	ContactClient  ContactType = "CLIENT"
	ContactPartner ContactType = "PARTNER"
	ContactSponsor ContactType = "SPONSOR"
	ContactVisitor ContactType = "VISITOR"
)

type ContactStatus string

const (
	ContactPending  ContactStatus = "PENDING"
	ContactApproved ContactStatus = "APPROVED"
	ContactRejected ContactStatus = "REJECTED"
)

// Contact is the single stored shape behind invites, clients, partners,
// sponsors and visitors; Type discriminates the business meaning.
type Contact struct {
	ID           uint          `json:"id"`
	EventID      uint          `json:"event_id"`
	Type         ContactType   `json:"type"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Organization string        `json:"organization"`
	Website      string        `json:"website"`
	Country      *Country      `json:"country,omitempty"`
	Status       ContactStatus `json:"status"`
	Notes        string        `json:"notes"`
	Tier         string        `json:"tier"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (c *Contact) Approve() {
	if c.Status == ContactPending {
		c.Status = ContactApproved
	}
}

func (c *Contact) Reject() {
	if c.Status == ContactPending {
		c.Status = ContactRejected
	}
}

// CountryCount is a grouped aggregation row for contacts per country.
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}
