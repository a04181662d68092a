package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(level)
	log := zap.New(core)

	r := gin.New()
	r.Use(Recovery(log), GinMiddleware(log))
	return r, recorded
}

func TestGinMiddleware_LevelByStatus(t *testing.T) {
	r, recorded := newObservedRouter(zapcore.DebugLevel)
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/missing", "/broken"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := recorded.FilterMessage("http request").All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestGinMiddleware_RequestID(t *testing.T) {
	r, recorded := newObservedRouter(zapcore.InfoLevel)
	r.GET("/ok", func(c *gin.Context) {
		FromGin(c).Info("inside handler")
		c.Status(http.StatusOK)
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set("X-Request-ID", "req-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
		inside := recorded.FilterMessage("inside handler").All()
		require.Len(t, inside, 1)
		assert.Equal(t, "req-123", inside[0].ContextMap()["request_id"])
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestRecovery(t *testing.T) {
	r, recorded := newObservedRouter(zapcore.InfoLevel)
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, recorded.FilterMessage("panic recovered").Len())
}

func TestFromGin_Default(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, FromGin(c))
}
