package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// hexColorPattern accepts #RRGGBB or #RGB.
var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

type CreateQRCodeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Foreground  string `json:"foreground"`
	Background  string `json:"background"`
}

func (req *CreateQRCodeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, 2000)),
		validation.Field(&req.Foreground, validation.Match(hexColorPattern)),
		validation.Field(&req.Background, validation.Match(hexColorPattern)),
	)
}

type UpdateQRCodeRequest struct {
	CreateQRCodeRequest
}
