package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateContactRequest struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Website      string `json:"website"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	Tier         string `json:"tier"`
}

func (req *CreateContactRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Type, validation.Required,
			validation.In("INVITE", "CLIENT", "PARTNER", "SPONSOR", "VISITOR")),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Website, is.URL),
		validation.Field(&req.Status,
			validation.In("PENDING", "APPROVED", "REJECTED")),
	)
}

type UpdateContactRequest struct {
	CreateContactRequest
}
