package domain

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleEditor  UserRole = "editor"
	RoleViewer  UserRole = "viewer"
)

type User struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	Password          string    `json:"-"`
	Name              string    `json:"name"`
	Role              UserRole  `json:"role"`
	Department        string    `json:"department"`
	Status            string    `json:"status"`
	CanManageEvents   bool      `json:"can_manage_events"`
	CanManageUsers    bool      `json:"can_manage_users"`
	CanManageInvoices bool      `json:"can_manage_invoices"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
