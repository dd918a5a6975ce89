package app_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/EvelinaRudin/blooberry-backend/internal/app"
	"github.com/EvelinaRudin/blooberry-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const allowedOrigin = "https://evelinarudin.github.io"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{
		Port:            "0",
		StripeSecretKey: "sk_test_dummy",
		FrontendOrigin:  allowedOrigin,
		SuccessURL:      allowedOrigin + "/blooberry-crochet/success.html",
		CancelURL:       allowedOrigin + "/blooberry-crochet/cart.html",
	}
	require.NoError(t, app.BuildApp(r, cfg, zap.NewNop()))
	return r
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	t.Run("preflight_from_allowed_origin", func(t *testing.T) {
		r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/create-checkout-session", nil)
		req.Header.Set("Origin", allowedOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, allowedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("preflight_from_disallowed_origin", func(t *testing.T) {
		r := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/create-checkout-session", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("post_from_disallowed_origin_never_reaches_handler", func(t *testing.T) {
		r := newTestRouter(t)

		body := `{"cartItems":[{"name":"Scarf","price":150,"quantity":2}]}`
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("post_from_allowed_origin_reaches_handler", func(t *testing.T) {
		r := newTestRouter(t)

		// a malformed body proves the checkout handler answered, not CORS
		req := httptest.NewRequest(http.MethodPost, "/create-checkout-session", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Origin", allowedOrigin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, allowedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.JSONEq(t, `{"error":"Invalid cartItems data"}`, w.Body.String())
	})
}

func TestRequestIDHeader(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	t.Run("caller_supplied_id_is_kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}
