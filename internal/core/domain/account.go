package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPhoneTaken          = errors.New("phone number already registered")
	ErrClientNotFound      = errors.New("client not found")
	ErrRecoveryUnsupported = errors.New("password recovery unsupported")
	ErrForbidden           = errors.New("access forbidden")
)

// Client is a registered buyer. Phone is the unique login key.
// Password holds whatever the credentials provider sealed.
type Client struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name the way orders snapshot it.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClientInput carries self-registration fields.
type ClientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

// Admin is the single administrator account.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// AdminCredentials is what the disclosure mechanism reveals.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DefaultAdmin is seeded when no admin record has been persisted yet.
func DefaultAdmin() Admin {
	return Admin{
		ID:       "admin-1",
		Username: "admin",
		Password: "admin123",
		Email:    "admin@boutique.com",
	}
}
