package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateSpeakerRequest struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
}

func (req *CreateSpeakerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(3, 200)),
		validation.Field(&req.Bio, validation.Length(10, 2000)),
		validation.Field(&req.AvatarURL, is.URL),
	)
}

type UpdateSpeakerRequest struct {
	CreateSpeakerRequest
}
