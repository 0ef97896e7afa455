package handler

import (
	"net/http"

	"diarycard/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, cards *service.CardService, flashes *Flashes, cookieSecure bool) {
	render := &renderer{flashes: flashes}
	ah := NewAuthHandler(auth, flashes, render, cookieSecure)
	ch := NewCardHandler(cards, flashes, render)
	hh := NewHomeHandler(render)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(hh.HandleHome)))

	mux.Handle("GET /register", OptionalAuth(auth, http.HandlerFunc(ah.HandleRegisterForm)))
	mux.HandleFunc("POST /register", ah.HandleRegister)
	mux.Handle("GET /login/{$}", OptionalAuth(auth, http.HandlerFunc(ah.HandleLoginForm)))
	mux.HandleFunc("POST /login/{$}", ah.HandleLogin)
	mux.Handle("GET /logout/{$}", RequireAuth(auth, http.HandlerFunc(ah.HandleLogout)))

	mux.Handle("GET /index", RequireAuth(auth, http.HandlerFunc(ch.HandleIndex)))
	mux.Handle("GET /card/{id}", RequireAuth(auth, http.HandlerFunc(ch.HandleShow)))
	mux.Handle("GET /create", RequireAuth(auth, http.HandlerFunc(ch.HandleCreateForm)))
	mux.Handle("GET /form_create", RequireAuth(auth, http.HandlerFunc(ch.HandleFormCreateRedirect)))
	mux.Handle("POST /form_create", RequireAuth(auth, http.HandlerFunc(ch.HandleFormCreate)))
}
