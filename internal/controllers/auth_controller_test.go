package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"newsd/internal/structures"
	"newsd/internal/testutil"
)

type mockSessions struct {
	token     string
	valid     bool
	destroyed []string
	pruned    int
}

func (m *mockSessions) Create() string { return m.token }
func (m *mockSessions) Valid(token string) bool {
	return m.valid && token == m.token
}
func (m *mockSessions) Destroy(token string) { m.destroyed = append(m.destroyed, token) }
func (m *mockSessions) Prune()               { m.pruned++ }

func newTestAuthController(t *testing.T, sessions *mockSessions) *AuthController {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	conf := &structures.Config{
		Auth: structures.AuthConfig{
			PasswordHash: string(hash),
			SessionTTL:   12 * time.Hour,
		},
	}
	return NewAuthController(&testutil.MockLogger{}, sessions, conf)
}

func TestAuthController_LoginSuccess(t *testing.T) {
	sessions := &mockSessions{token: "tok-1"}
	controller := newTestAuthController(t, sessions)

	rec := httptest.NewRecorder()
	controller.Login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"hunter2"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := cookieByName(t, rec, sessionCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok-1", cookie.Value)
	assert.Equal(t, int((12 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestAuthController_LoginWrongPassword(t *testing.T) {
	sessions := &mockSessions{token: "tok-1"}
	controller := newTestAuthController(t, sessions)

	rec := httptest.NewRecorder()
	controller.Login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"password":"wrong"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid password")
	assert.Nil(t, cookieByName(t, rec, sessionCookie))
}

func TestAuthController_LoginBadJSON(t *testing.T) {
	controller := newTestAuthController(t, &mockSessions{})

	rec := httptest.NewRecorder()
	controller.Login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("nope")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthController_LogoutDestroysSession(t *testing.T) {
	sessions := &mockSessions{token: "tok-1", valid: true}
	controller := newTestAuthController(t, sessions)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	controller.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"tok-1"}, sessions.destroyed)

	cookie := cookieByName(t, rec, sessionCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAuthController_RequirePassesValidSession(t *testing.T) {
	sessions := &mockSessions{token: "tok-1", valid: true}
	controller := newTestAuthController(t, sessions)

	called := false
	handler := controller.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthController_RequireRejectsAPIRequest(t *testing.T) {
	controller := newTestAuthController(t, &mockSessions{})

	handler := controller.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")
}

func TestAuthController_RequireRedirectsBrowser(t *testing.T) {
	controller := newTestAuthController(t, &mockSessions{})

	handler := controller.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAuthController_RequireRejectsExpiredSession(t *testing.T) {
	sessions := &mockSessions{token: "tok-1", valid: false}
	controller := newTestAuthController(t, sessions)

	handler := controller.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/cards", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
