package request

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContactRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*CreateContactRequest)
		wantField string
	}{
		{"valid invite", func(r *CreateContactRequest) {}, ""},
		{"missing name", func(r *CreateContactRequest) { r.Name = "" }, "name"},
		{"unknown type", func(r *CreateContactRequest) { r.Type = "SUPPLIER" }, "type"},
		{"bad email", func(r *CreateContactRequest) { r.Email = "not-an-email" }, "email"},
		{"bad website", func(r *CreateContactRequest) { r.Website = "::" }, "website"},
		{"unknown status", func(r *CreateContactRequest) { r.Status = "WAITING" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateContactRequest{
				Type:    "INVITE",
				Name:    "Ada Lovelace",
				Email:   "ada@example.com",
				Website: "https://example.com",
				Status:  "PENDING",
			}
			tt.modify(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var fieldErrs validation.Errors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Contains(t, fieldErrs, tt.wantField)
		})
	}
}

func TestCreateContactRequest_OptionalFields(t *testing.T) {
	// Email, website and status may all be empty.
	req := CreateContactRequest{
		Type: "VISITOR",
		Name: "Walk-in Guest",
	}

	assert.NoError(t, req.Validate())
}

func TestCreateSpeakerRequest_Validate(t *testing.T) {
	valid := CreateSpeakerRequest{
		Name: "Grace Hopper",
		Bio:  "Rear admiral and computing pioneer.",
	}
	assert.NoError(t, valid.Validate())

	short := CreateSpeakerRequest{Name: "ab"}
	var fieldErrs validation.Errors
	require.ErrorAs(t, short.Validate(), &fieldErrs)
	assert.Contains(t, fieldErrs, "name")

	noBio := CreateSpeakerRequest{Name: "Grace Hopper"}
	assert.NoError(t, noBio.Validate(), "bio is optional")

	shortBio := CreateSpeakerRequest{Name: "Grace Hopper", Bio: "short"}
	require.ErrorAs(t, shortBio.Validate(), &fieldErrs)
	assert.Contains(t, fieldErrs, "bio")
}

func TestCreateQRCodeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fg, bg  string
		wantErr bool
	}{
		{"six digit colors", "#1A2B3C", "#FFFFFF", false},
		{"three digit colors", "#000", "#fff", false},
		{"empty colors allowed", "", "", false},
		{"missing hash", "1A2B3C", "#FFFFFF", true},
		{"wrong length", "#1A2B", "#FFFFFF", true},
		{"non-hex digits", "#GGGGGG", "#FFFFFF", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateQRCodeRequest{
				Title:      "Entry pass",
				Content:    "https://example.com/checkin",
				Foreground: tt.fg,
				Background: tt.bg,
			}

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateInvoiceRequest_Validate(t *testing.T) {
	valid := CreateInvoiceRequest{
		ContactID: 3,
		Status:    "PENDING",
		Date:      "2025-09-01",
		DueDate:   "2025-10-01",
		Items: []InvoiceItemRequest{
			{Description: "Sponsorship package", Quantity: 1, UnitPrice: 5000},
		},
	}
	assert.NoError(t, valid.Validate())

	noItems := valid
	noItems.Items = nil
	assert.Error(t, noItems.Validate())

	badItem := valid
	badItem.Items = []InvoiceItemRequest{{Description: "", Quantity: 0, UnitPrice: 10}}
	assert.Error(t, badItem.Validate())
}
