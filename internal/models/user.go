package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// for registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	CPF      string `json:"cpf,omitempty" validate:"omitempty,len=11,numeric"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
}

// for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// what the auth API hands back on a successful login
type AuthResult struct {
	Token    string   `json:"token"`
	Customer Customer `json:"customer"`
}

type LoginResponse struct {
	Success        bool      `json:"success"`
	Customer       *Customer `json:"customer,omitempty"`
	ExpiresAt      time.Time `json:"expires_at,omitzero"`
	RemainingTries int       `json:"remaining_tries,omitempty"`
	RetryAfter     int       `json:"retry_after,omitempty"`
	Message        string    `json:"message,omitempty"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetValidateRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

type PasswordResetConfirmRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Claims are read from the auth API's token. The storefront never issues tokens.
type Claims struct {
	// UserID is a number or a string depending on the backend version.
	UserID any    `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// CustomerID prefers the explicit id claim and falls back to the subject.
func (c *Claims) CustomerID() string {
	switch v := c.UserID.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}

	return c.Subject
}

func (c *Claims) IsAdmin() bool {
	return strings.EqualFold(c.Role, "admin")
}
