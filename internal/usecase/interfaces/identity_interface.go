package interfaces

import "production_scheduler/internal/domain/entities"

// IIdentityDirectory resolves credentials to the customers a caller may see.
type IIdentityDirectory interface {
	VerifyLogin(username, password string) ([]string, bool)
	ResolveToken(token string) ([]string, bool)
	VerifyAdmin(username, password string) bool
}

// ISessionIssuer signs and verifies bearer sessions.
type ISessionIssuer interface {
	Issue(s entities.Session) (string, entities.Session, error)
	Parse(token string) (entities.Session, error)
}
