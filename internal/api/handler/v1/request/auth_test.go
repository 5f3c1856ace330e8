package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	base := SignupRequest{
		Email:           "user@example.com",
		Password:        "password1",
		ConfirmPassword: "password1",
		Name:            "New User",
		Role:            "editor",
	}

	t.Run("valid request", func(t *testing.T) {
		req := base
		assert.NoError(t, req.Validate())
	})

	t.Run("password too short", func(t *testing.T) {
		req := base
		req.Password = "pass1"
		req.ConfirmPassword = "pass1"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password without digit", func(t *testing.T) {
		req := base
		req.Password = "passwords"
		req.ConfirmPassword = "passwords"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("password without letter", func(t *testing.T) {
		req := base
		req.Password = "12345678"
		req.ConfirmPassword = "12345678"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)
	})

	t.Run("confirm mismatch", func(t *testing.T) {
		req := base
		req.ConfirmPassword = "password2"
		assert.ErrorIs(t, req.Validate(), errConfirmPasswordMismatch)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := base
		req.Role = "superuser"
		assert.Error(t, req.Validate())
	})
}

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := CreateUserRequest{
		Email:    "new@example.com",
		Password: "password1",
		Name:     "New User",
		Role:     "viewer",
	}
	assert.NoError(t, valid.Validate())

	weak := valid
	weak.Password = "short"
	assert.ErrorIs(t, weak.Validate(), errInvalidPassword)

	badRole := valid
	badRole.Role = "root"
	assert.Error(t, badRole.Validate())
}
