package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kiosco/internal/apierror"
	"kiosco/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

// ── Helpers ───────────────────────────────────────────────────────────────────

func signToken(t *testing.T, secret, user, jti string, dur time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1, "user": user, "rol": "usuario", "jti": jti,
		"exp": time.Now().Add(dur).Unix(), "iat": time.Now().Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func gateRouter(store repository.SesionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/dashboard", SesionAuth(testSecret, store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": GetSesion(c).User})
	})
	return r
}

func get(r http.Handler, path string, mod func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if mod != nil {
		mod(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── Tests: SesionAuth ─────────────────────────────────────────────────────────

func TestSesionAuth_SinToken(t *testing.T) {
	w := get(gateRouter(repository.NewMemorySesionStore()), "/dashboard", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body apierror.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Debes iniciar sesión para acceder.", body.Detail)
	assert.Equal(t, apierror.NivelWarning, body.Nivel)
}

func TestSesionAuth_Cookie(t *testing.T) {
	token := signToken(t, testSecret, "Laura", "j1", time.Hour)
	w := get(gateRouter(repository.NewMemorySesionStore()), "/dashboard", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":"Laura"}`, w.Body.String())
}

func TestSesionAuth_Bearer(t *testing.T) {
	token := signToken(t, testSecret, "Laura", "j1", time.Hour)
	w := get(gateRouter(repository.NewMemorySesionStore()), "/dashboard", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSesionAuth_TokenInvalido(t *testing.T) {
	cases := map[string]string{
		"otra_clave": signToken(t, "another-secret", "Laura", "j1", time.Hour),
		"expirado":   signToken(t, testSecret, "Laura", "j1", -time.Minute),
		"sin_user":   signToken(t, testSecret, "", "j1", time.Hour),
		"basura":     "abc.def.ghi",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			w := get(gateRouter(repository.NewMemorySesionStore()), "/dashboard", func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			})
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestSesionAuth_TokenRevocado(t *testing.T) {
	store := repository.NewMemorySesionStore()
	require.NoError(t, store.Revocar(context.Background(), "j1", time.Hour))
	token := signToken(t, testSecret, "Laura", "j1", time.Hour)

	w := get(gateRouter(store), "/dashboard", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ── Tests: RequestID / RateLimiter / Recovery ─────────────────────────────────

func TestRequestID(t *testing.T) {
	r := gateRouter(repository.NewMemorySesionStore())

	w := get(r, "/dashboard", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = get(r, "/dashboard", func(req *http.Request) { req.Header.Set(RequestIDHeader, "abc-123") })
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RateLimiter(2, time.Minute), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/", nil).Code)
	assert.Equal(t, http.StatusOK, get(r, "/", nil).Code)
	w := get(r, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestLimiter_VentanaNueva(t *testing.T) {
	l := newLimiter(1, time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	allowed, _ := l.allow("1.2.3.4")
	assert.True(t, allowed)
	allowed, _ = l.allow("1.2.3.4")
	assert.False(t, allowed)
	allowed, _ = l.allow("5.6.7.8")
	assert.True(t, allowed, "limits are per IP")

	now = now.Add(61 * time.Second)
	allowed, _ = l.allow("1.2.3.4")
	assert.True(t, allowed)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := get(r, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("http://localhost:3000"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
