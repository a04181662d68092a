package request

// LoginRequest is used by both the customer and the admin login routes.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LinkTokenRequest exchanges a per-customer link token for a session.
type LinkTokenRequest struct {
	Token string `json:"token" binding:"required"`
}
