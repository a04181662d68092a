package identity

import (
	"errors"
	"fmt"
	"time"

	"production_scheduler/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrExpiredSession = errors.New("session has expired")
)

type sessionClaims struct {
	jwt.RegisteredClaims
	Role      entities.Role `json:"role"`
	Customers []string      `json:"customers,omitempty"`
	Via       entities.Via  `json:"via,omitempty"`
}

// SessionIssuer signs and verifies HS256 session tokens.
type SessionIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewSessionIssuer(secret string, ttl time.Duration) (*SessionIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	return &SessionIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "production-scheduler",
		now:    time.Now,
	}, nil
}

// Issue signs s and returns the token with its expiry filled in.
func (i *SessionIssuer) Issue(s entities.Session) (string, entities.Session, error) {
	now := i.now()
	s.ExpiresAt = now.Add(i.ttl).Truncate(time.Second)
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.issuer,
			Subject:   s.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		Role:      s.Role,
		Customers: s.Customers,
		Via:       s.Via,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", entities.Session{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, s, nil
}

func (i *SessionIssuer) Parse(token string) (entities.Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return i.secret, nil
	},
		jwt.WithIssuer(i.issuer),
		jwt.WithTimeFunc(i.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Session{}, ErrExpiredSession
		}
		return entities.Session{}, ErrInvalidSession
	}
	if !parsed.Valid {
		return entities.Session{}, ErrInvalidSession
	}

	switch claims.Role {
	case entities.RoleAdmin:
	case entities.RoleCustomer:
		if len(claims.Customers) == 0 {
			return entities.Session{}, ErrInvalidSession
		}
	default:
		return entities.Session{}, ErrInvalidSession
	}

	s := entities.Session{
		Subject:   claims.Subject,
		Role:      claims.Role,
		Customers: claims.Customers,
		Via:       claims.Via,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
