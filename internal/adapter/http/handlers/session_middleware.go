package handlers

import (
	"strings"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/infrastructure/logger"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// RequireSession admits requests carrying a bearer session of the given role.
func RequireSession(auth usecase.IAuthUseCase, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := auth.Authenticate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			logger.FromGin(c).Debug("session rejected", zap.Error(err))
			abortWith(c, errUnauthenticated)
			return
		}
		if s.Role != role {
			abortWith(c, errForbidden)
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// sessionFrom returns the session stored by RequireSession.
func sessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	s, ok := v.(entities.Session)
	return s, ok
}
