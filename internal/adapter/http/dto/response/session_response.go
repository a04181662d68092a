package response

import (
	"time"

	"production_scheduler/internal/usecase"
)

type SessionResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	Role      string    `json:"role"`
	Customers []string  `json:"customers,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSessionToken(t usecase.SessionToken) SessionResponse {
	return SessionResponse{
		Token:     t.Token,
		TokenType: "Bearer",
		Role:      string(t.Session.Role),
		Customers: t.Session.Customers,
		ExpiresAt: t.Session.ExpiresAt,
	}
}
