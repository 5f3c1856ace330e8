package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	TimeRange   string `json:"time_range"` // free-text range, e.g. "14:00 - 16:00"
	Type        string `json:"type"`
	Location    string `json:"location"`
	SpeakerIDs  []uint `json:"speaker_ids"`
}

func (req *CreateSessionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.Date, validation.Required, validation.By(dateParseable)),
		validation.Field(&req.Type, validation.Required,
			validation.In("WORKSHOP", "PANEL", "KEYNOTE", "NETWORKING", "OTHER")),
	)
}

type UpdateSessionRequest struct {
	CreateSessionRequest
}
