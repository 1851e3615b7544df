package models

import "time"

// Session is everything the storefront remembers about one shopper between requests.
type Session struct {
	ID        string        `json:"id"`
	Auth      *AuthInfo     `json:"auth,omitempty"`
	Cart      Cart          `json:"cart"`
	Checkout  CheckoutState `json:"checkout"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	rotate bool
}

// RequestRotation asks for the session to move to a fresh id before the response goes out.
func (s *Session) RequestRotation() {
	s.rotate = true
}

func (s *Session) RotationRequested() bool {
	return s.rotate
}

func NewSession(id string) *Session {
	now := time.Now()

	return &Session{
		ID:        id,
		Checkout:  CheckoutState{Step: StepCart},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type AuthInfo struct {
	Token      string    `json:"token"`
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsAdmin    bool      `json:"is_admin"`
	ExpiresAt  time.Time `json:"expires_at,omitzero"`
}

// Authenticated reports whether the session carries a usable token for a known customer.
func (s *Session) Authenticated() bool {
	if s.Auth == nil || s.Auth.Token == "" || s.Auth.CustomerID == "" {
		return false
	}

	return s.Auth.ExpiresAt.IsZero() || time.Now().Before(s.Auth.ExpiresAt)
}

func (s *Session) Token() string {
	if s.Auth == nil {
		return ""
	}

	return s.Auth.Token
}

func (s *Session) CustomerID() string {
	if s.Auth == nil {
		return ""
	}

	return s.Auth.CustomerID
}
