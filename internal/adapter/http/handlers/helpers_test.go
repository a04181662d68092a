package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var acmeSession = entities.Session{
	Subject:   "user1",
	Role:      entities.RoleCustomer,
	Customers: []string{"Acme"},
	Via:       entities.ViaPassword,
}

// withSession stands in for RequireSession in handler tests.
func withSession(s entities.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, s)
		c.Next()
	}
}

func serve(r *gin.Engine, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var e pkg.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func init() {
	gin.SetMode(gin.TestMode)
}
