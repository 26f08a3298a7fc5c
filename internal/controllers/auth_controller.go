package controllers

import (
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/structures"
)

const sessionCookie = "session"

type AuthController struct {
	logger   providers.Logger
	sessions providers.SessionProviderInterface
	conf     *structures.Config
}

func NewAuthController(logger providers.Logger, sessions providers.SessionProviderInterface, conf *structures.Config) *AuthController {
	return &AuthController{
		logger:   logger,
		sessions: sessions,
		conf:     conf,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, &models.ValidationError{Msg: "invalid request body"})
		return
	}

	err := bcrypt.CompareHashAndPassword([]byte(ac.conf.Auth.PasswordHash), []byte(payload.Password))
	if err != nil {
		ac.logger.Warnf(providers.TypePost, "Failed login attempt")
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid password"})
		return
	}

	token := ac.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		MaxAge:   int(ac.conf.Auth.SessionTTL.Seconds()),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if token := cookieValue(r, sessionCookie); token != "" {
		ac.sessions.Destroy(token)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Require gates a route on a valid session. API-style requests get a 401
// JSON body; browser navigation is redirected to the login surface.
func (ac *AuthController) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := cookieValue(r, sessionCookie); token != "" && ac.sessions.Valid(token) {
			next.ServeHTTP(w, r)
			return
		}
		if expectsJSON(r) {
			writeError(w, models.ErrUnauthorized)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}

func expectsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		return false
	}
	return true
}
