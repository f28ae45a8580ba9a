package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIdKey))
	})
	return router
}

func TestRequestIdMiddleware(t *testing.T) {
	router := newTestRouter(RequestIdMiddleware())

	t.Run("generate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)

		requestId := w.Header().Get(RequestIdHeader)
		assert.Len(t, requestId, 36)
		assert.Equal(t, requestId, w.Body.String())
	})

	t.Run("propagate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIdHeader, "req-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-1", w.Header().Get(RequestIdHeader))
		assert.Equal(t, "req-1", w.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var out bytes.Buffer
	router := newTestRouter(RequestIdMiddleware(), LoggerMiddleware(&out))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIdHeader, "req-2")
	router.ServeHTTP(w, req)

	entry := map[string]any{}
	assert.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "req-2", entry["requestId"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.Equal(t, "/ping", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("any_origin", func(t *testing.T) {
		router := newTestRouter(CORSMiddleware(nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://sheet.test")
		router.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed_origin", func(t *testing.T) {
		router := newTestRouter(CORSMiddleware([]string{"http://sheet.test"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://sheet.test")
		router.ServeHTTP(w, req)

		assert.Equal(t, "http://sheet.test", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted_origin", func(t *testing.T) {
		router := newTestRouter(CORSMiddleware([]string{"http://sheet.test"}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.test")
		router.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		router := newTestRouter(CORSMiddleware(nil))
		router.OPTIONS("/ping", func(c *gin.Context) {})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodOptions, "/ping", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
