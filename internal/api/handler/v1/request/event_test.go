package request

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateEventRequest() CreateEventRequest {
	return CreateEventRequest{
		Title:       "Tech Summit 2025",
		Description: "A three-day gathering of engineers and founders.",
		Location:    "Berlin Congress Center",
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-03T18:00:00Z",
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := validCreateEventRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("title below minimum length", func(t *testing.T) {
		req := validCreateEventRequest()
		req.Title = "ab"

		err := req.Validate()
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "title")
		assert.NotContains(t, fieldErrs, "description")
	})

	t.Run("short description and location reported per field", func(t *testing.T) {
		req := validCreateEventRequest()
		req.Description = "too short"
		req.Location = "ab"

		err := req.Validate()
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "description")
		assert.Contains(t, fieldErrs, "location")
	})

	t.Run("unparseable date", func(t *testing.T) {
		req := validCreateEventRequest()
		req.StartDate = "01/09/2025"

		err := req.Validate()
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "start_date")
	})

	t.Run("invalid logo URL", func(t *testing.T) {
		req := validCreateEventRequest()
		req.LogoURL = "not a url"

		err := req.Validate()
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, "logo_url")
	})
}

func TestUpdateEventStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&UpdateEventStatusRequest{Status: "ACTIVE"}).Validate())
	assert.Error(t, (&UpdateEventStatusRequest{Status: "RUNNING"}).Validate())
	assert.Error(t, (&UpdateEventStatusRequest{}).Validate())
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2025-09-01")
	assert.NoError(t, err)

	parsed, err := ParseDate("2025-09-01T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	_, err = ParseDate("September 1st")
	assert.Error(t, err)
}
