package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateUserRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	Department        string `json:"department"`
	Status            string `json:"status"`
	CanManageEvents   bool   `json:"can_manage_events"`
	CanManageUsers    bool   `json:"can_manage_users"`
	CanManageInvoices bool   `json:"can_manage_invoices"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Role, validation.Required,
			validation.In("admin", "manager", "editor", "viewer")),
	)
	if err != nil {
		return err
	}

	ok, err := passwordRegex.MatchString(req.Password)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidPassword
	}

	return nil
}

type UpdateUserRequest struct {
	Name              string `json:"name"`
	Role              string `json:"role"`
	Department        string `json:"department"`
	Status            string `json:"status"`
	CanManageEvents   bool   `json:"can_manage_events"`
	CanManageUsers    bool   `json:"can_manage_users"`
	CanManageInvoices bool   `json:"can_manage_invoices"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Role, validation.Required,
			validation.In("admin", "manager", "editor", "viewer")),
	)
}
