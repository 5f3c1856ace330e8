package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Organizers  []string `json:"organizers"`
	Themes      []string `json:"themes"`
	Goals       string   `json:"goals"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Location    string   `json:"location"`
	LogoURL     string   `json:"logo_url"`
	CoverURL    string   `json:"cover_url"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.Description, validation.Required, validation.Length(10, 2000)),
		validation.Field(&req.Location, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.StartDate, validation.Required, validation.By(dateParseable)),
		validation.Field(&req.EndDate, validation.Required, validation.By(dateParseable)),
		validation.Field(&req.LogoURL, is.URL),
		validation.Field(&req.CoverURL, is.URL),
	)
}

type UpdateEventRequest struct {
	CreateEventRequest
}

type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

func (req *UpdateEventStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Status, validation.Required,
			validation.In("UPCOMING", "ACTIVE", "COMPLETED", "CANCELLED")),
	)
}
