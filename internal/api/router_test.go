package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/logistics-portal/internal/api/handler"
	"github.com/99minutos/logistics-portal/internal/api/httperr"
	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/service"
	redisdb "github.com/99minutos/logistics-portal/internal/infrastructure/db/redis"
	"github.com/99minutos/logistics-portal/internal/infrastructure/session"
)

const (
	testSecret = "router-test-secret-0123"
	testCookie = "portal_session"
)

type accountsStub struct {
	mu      sync.Mutex
	byEmail map[string]*domain.Account
}

func (s *accountsStub) FindActiveByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

// The echo prometheus middleware registers collectors on the default
// registry, so every test shares one router.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

func router(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		mr, err := miniredis.Run()
		if err != nil {
			t.Fatalf("miniredis: %v", err)
		}
		client := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
		revocations := redisdb.NewRevocationStore(client)
		identity := session.NewJWTProvider(testSecret, testCookie, revocations)

		accounts := &accountsStub{byEmail: map[string]*domain.Account{
			"ada@example.com":    {ID: "u-admin", Email: "ada@example.com", Roles: []string{"admin"}, Status: domain.AccountActive},
			"sam@example.com":    {ID: "u-support", Email: "sam@example.com", Role: "support", Status: domain.AccountActive},
			"eddie@example.com":  {ID: "u-editor", Email: "eddie@example.com", Roles: []string{"editor"}, Status: domain.AccountActive},
			"dan@example.com":    {ID: "u-driver", Email: "dan@example.com", Roles: []string{"driver"}, Status: domain.AccountActive},
			"logout@example.com": {ID: "u-logout", Email: "logout@example.com", Roles: []string{"customer"}, Status: domain.AccountActive},
		}}

		testRouter = NewRouter(Dependencies{
			Sessions:      service.NewSessionService(identity, accounts, zerolog.Nop()),
			Authz:         service.NewAuthzService(nil),
			Identity:      identity,
			Revoker:       revocations,
			SessionCookie: testCookie,
			Log:           zerolog.Nop(),
			Checks: map[string]handler.DependencyCheck{
				"redis": redisdb.Ping(client),
				"mongo": func(context.Context) error { return errors.New("no mongo in tests") },
			},
		})
	})
	return testRouter
}

func token(t *testing.T, sid, email string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func do(t *testing.T, method, path, tok string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if tok != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: tok})
	}
	rec := httptest.NewRecorder()
	router(t).ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) httperr.Envelope {
	t.Helper()
	var env httperr.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRouter_Health(t *testing.T) {
	rec := do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Routes(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		email   string
		code    int
		message string
	}{
		{"me without session", http.MethodGet, "/v1/authz/me", "", http.StatusUnauthorized, httperr.MsgNoSession},
		{"me with support session", http.MethodGet, "/v1/authz/me", "sam@example.com", http.StatusOK, ""},
		{"me with deleted account", http.MethodGet, "/v1/authz/me", "gone@example.com", http.StatusForbidden, httperr.MsgAccountNotFound},
		{"roles listing denied to support", http.MethodGet, "/v1/authz/roles", "sam@example.com", http.StatusForbidden, httperr.MsgPermissionDenied},
		{"roles listing for admin", http.MethodGet, "/v1/authz/roles", "ada@example.com", http.StatusOK, ""},
		{"permissions listing for admin", http.MethodGet, "/v1/authz/permissions", "ada@example.com", http.StatusOK, ""},
		{"admin ping for editor", http.MethodGet, "/v1/admin/ping", "eddie@example.com", http.StatusOK, ""},
		{"admin ping denied to driver", http.MethodGet, "/v1/admin/ping", "dan@example.com", http.StatusForbidden, httperr.MsgPermissionDenied},
		{"unknown route", http.MethodGet, "/v1/nope", "", http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := ""
			if tt.email != "" {
				tok = token(t, "sid-"+tt.name, tt.email)
			}
			rec := do(t, tt.method, tt.path, tok)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
			if tt.message != "" {
				env := envelope(t, rec)
				assert.False(t, env.Success)
				assert.Equal(t, tt.message, env.Message)
			}
		})
	}
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	tok := token(t, "sid-logout", "logout@example.com")

	require.Equal(t, http.StatusOK, do(t, http.MethodGet, "/v1/authz/me", tok).Code)
	require.Equal(t, http.StatusNoContent, do(t, http.MethodPost, "/v1/auth/logout", tok).Code)

	rec := do(t, http.MethodGet, "/v1/authz/me", tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, httperr.MsgNoSession, envelope(t, rec).Message)
}

func TestRouter_LogoutWithoutSession(t *testing.T) {
	rec := do(t, http.MethodPost, "/v1/auth/logout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
