package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"diarycard/internal/domain"
	"diarycard/internal/service"
)

// CardHandler handles the card listing, detail, and creation pages. All of
// its routes sit behind RequireAuth, so UserFromContext never returns nil.
type CardHandler struct {
	cards   *service.CardService
	flashes *Flashes
	render  *renderer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cards *service.CardService, flashes *Flashes, render *renderer) *CardHandler {
	return &CardHandler{cards: cards, flashes: flashes, render: render}
}

// HandleIndex lists the current user's cards.
// GET /index
func (h *CardHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	cards, err := h.cards.ListOwnedBy(r.Context(), user.ID)
	if err != nil {
		slog.Error("list cards", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render.page(w, r, "index.html", map[string]any{"Cards": cards})
}

// HandleShow shows a single card. A card owned by someone else, or no card
// at all, redirects back to the listing with a message rather than exposing
// the resource.
// GET /card/{id}
func (h *CardHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.flashes.Add(w, r, "error", "Card not found")
		http.Redirect(w, r, "/index", http.StatusSeeOther)
		return
	}

	card, err := h.cards.GetOwned(r.Context(), user.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			h.flashes.Add(w, r, "error", "You can only view your own cards")
		case errors.Is(err, domain.ErrNotFound):
			h.flashes.Add(w, r, "error", "Card not found")
		default:
			slog.Error("get card", "id", id, "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/index", http.StatusSeeOther)
		return
	}

	h.render.page(w, r, "card.html", map[string]any{"Card": card})
}

// HandleCreateForm shows the card creation form.
// GET /create
func (h *CardHandler) HandleCreateForm(w http.ResponseWriter, r *http.Request) {
	h.render.page(w, r, "create.html", nil)
}

// HandleFormCreate creates a card for the current user and redirects to the
// listing.
// POST /form_create
func (h *CardHandler) HandleFormCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	title := r.FormValue("title")
	subtitle := r.FormValue("subtitle")
	text := r.FormValue("text")

	if _, err := h.cards.Create(r.Context(), user.ID, title, subtitle, text); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.flashes.Add(w, r, "error", "Title and text are required")
			http.Redirect(w, r, "/create", http.StatusSeeOther)
			return
		}
		slog.Error("create card", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.flashes.Add(w, r, "success", "Card created successfully!")
	http.Redirect(w, r, "/index", http.StatusSeeOther)
}

// HandleFormCreateRedirect sends browsers that GET the form-post endpoint
// back to the creation form.
// GET /form_create
func (h *CardHandler) HandleFormCreateRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/create", http.StatusSeeOther)
}
