package entities

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Via records how a customer session was established.
type Via string

const (
	ViaPassword Via = "password"
	ViaToken    Via = "token"
	ViaAdmin    Via = "admin"
)

// Session is what a bearer token proves about its holder. Customers is the
// permitted-customer set for RoleCustomer and empty for RoleAdmin.
type Session struct {
	Subject   string    `json:"subject"`
	Role      Role      `json:"role"`
	Customers []string  `json:"customers,omitempty"`
	Via       Via       `json:"via"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
