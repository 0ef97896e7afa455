package handler

import "net/http"

// HomeHandler renders the landing page.
type HomeHandler struct {
	render *renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(render *renderer) *HomeHandler {
	return &HomeHandler{render: render}
}

// HandleHome renders the landing page, greeting the user when logged in.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render.page(w, r, "home.html", nil)
}
