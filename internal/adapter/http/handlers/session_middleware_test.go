package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"production_scheduler/internal/adapter/http/handlers/mocks"
	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/infrastructure/identity"
	"production_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newGuardedRouter(auth usecase.IAuthUseCase, role entities.Role) *gin.Engine {
	r := gin.New()
	r.GET("/guarded", RequireSession(auth, role), func(c *gin.Context) {
		s, _ := sessionFrom(c)
		c.String(http.StatusOK, s.Subject)
	})
	return r
}

func guardedRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession(t *testing.T) {
	t.Run("missing bearer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("").Return(entities.Session{}, usecase.ErrUnauthenticated)

		w := guardedRequest(newGuardedRouter(auth, entities.RoleCustomer), "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("stale").Return(entities.Session{}, identity.ErrExpiredSession)

		w := guardedRequest(newGuardedRouter(auth, entities.RoleCustomer), "Bearer stale")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("customer on an admin route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("tok").Return(acmeSession, nil)

		w := guardedRequest(newGuardedRouter(auth, entities.RoleAdmin), "Bearer tok")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("matching role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mocks.NewMockIAuthUseCase(ctrl)
		auth.EXPECT().Authenticate("tok").Return(acmeSession, nil)

		w := guardedRequest(newGuardedRouter(auth, entities.RoleCustomer), "bearer  tok ")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		assert.Equal(t, "user1", w.Body.String())
	})
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"Bearer abc":    "abc",
		"bearer abc":    "abc",
		"Basic abc":     "",
		"Bearer":        "",
		" Bearer  abc ": "abc",
	}
	for header, want := range cases {
		assert.Equal(t, want, bearerToken(header), "header %q", header)
	}
}
