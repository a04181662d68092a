package usecase

import (
	"errors"
	"strings"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLinkToken   = errors.New("invalid link token")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// SessionToken is a signed bearer token and the session it proves.
type SessionToken struct {
	Token   string
	Session entities.Session
}

// IAuthUseCase turns credentials into sessions. The visibility layer only ever
// sees the customer list carried by a verified session.
type IAuthUseCase interface {
	LoginCustomer(username, password string) (SessionToken, error)
	ExchangeLinkToken(token string) (SessionToken, error)
	LoginAdmin(username, password string) (SessionToken, error)
	Authenticate(bearer string) (entities.Session, error)
}

type AuthUseCase struct {
	directory interfaces.IIdentityDirectory
	sessions  interfaces.ISessionIssuer
	logger    *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(directory interfaces.IIdentityDirectory, sessions interfaces.ISessionIssuer, logger *zap.Logger) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{directory: directory, sessions: sessions, logger: logger}
}

func (u *AuthUseCase) LoginCustomer(username, password string) (SessionToken, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return SessionToken{}, ErrInvalidCredentials
	}
	customers, ok := u.directory.VerifyLogin(username, password)
	if !ok {
		u.logger.Info("customer login rejected", zap.String("username", username))
		return SessionToken{}, ErrInvalidCredentials
	}
	return u.issue(entities.Session{
		Subject:   username,
		Role:      entities.RoleCustomer,
		Customers: customers,
		Via:       entities.ViaPassword,
	})
}

// ExchangeLinkToken trades a per-customer link token for a session. The link
// token itself is never logged.
func (u *AuthUseCase) ExchangeLinkToken(token string) (SessionToken, error) {
	customers, ok := u.directory.ResolveToken(token)
	if !ok {
		u.logger.Info("link token rejected")
		return SessionToken{}, ErrInvalidLinkToken
	}
	return u.issue(entities.Session{
		Subject:   "link:" + strings.Join(customers, ","),
		Role:      entities.RoleCustomer,
		Customers: customers,
		Via:       entities.ViaToken,
	})
}

func (u *AuthUseCase) LoginAdmin(username, password string) (SessionToken, error) {
	username = strings.TrimSpace(username)
	if !u.directory.VerifyAdmin(username, password) {
		u.logger.Warn("admin login rejected", zap.String("username", username))
		return SessionToken{}, ErrInvalidCredentials
	}
	return u.issue(entities.Session{
		Subject: username,
		Role:    entities.RoleAdmin,
		Via:     entities.ViaAdmin,
	})
}

func (u *AuthUseCase) Authenticate(bearer string) (entities.Session, error) {
	bearer = strings.TrimSpace(bearer)
	if bearer == "" {
		return entities.Session{}, ErrUnauthenticated
	}
	s, err := u.sessions.Parse(bearer)
	if err != nil {
		return entities.Session{}, errors.Join(ErrUnauthenticated, err)
	}
	return s, nil
}

func (u *AuthUseCase) issue(s entities.Session) (SessionToken, error) {
	token, issued, err := u.sessions.Issue(s)
	if err != nil {
		return SessionToken{}, err
	}
	u.logger.Info("session issued",
		zap.String("subject", issued.Subject),
		zap.String("role", string(issued.Role)),
		zap.String("via", string(issued.Via)))
	return SessionToken{Token: token, Session: issued}, nil
}
