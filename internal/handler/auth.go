package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"diarycard/internal/domain"
	"diarycard/internal/service"
)

const authCookieName = "auth_token"

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	flashes      *Flashes
	render       *renderer
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, flashes *Flashes, render *renderer, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, flashes: flashes, render: render, cookieSecure: cookieSecure}
}

// HandleRegisterForm shows the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterForm(w http.ResponseWriter, r *http.Request) {
	h.render.page(w, r, "register.html", nil)
}

// HandleRegister processes a registration form post. A taken username or a
// missing field re-shows the form with a message; success redirects to the
// login page.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			h.flashes.Add(w, r, "error", "Username already exists")
		case errors.Is(err, domain.ErrInvalidInput):
			h.flashes.Add(w, r, "error", "Username and password are required")
		default:
			slog.Error("register user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	h.flashes.Add(w, r, "success", "Registration successful! Please login.")
	http.Redirect(w, r, "/login/", http.StatusSeeOther)
}

// HandleLoginForm shows the login form.
// GET /login/
func (h *AuthHandler) HandleLoginForm(w http.ResponseWriter, r *http.Request) {
	h.render.page(w, r, "login.html", nil)
}

// HandleLogin processes a login form post. Unknown username and wrong
// password produce the same message. Success sets the session cookie and
// redirects to the card listing.
// POST /login/
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	token, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.flashes.Add(w, r, "error", "Invalid username or password")
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		slog.Error("login user", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // matches the token's 24h expiry
	})

	http.Redirect(w, r, "/index", http.StatusSeeOther)
}

// HandleLogout clears the session cookie and redirects home.
// GET /logout/
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
