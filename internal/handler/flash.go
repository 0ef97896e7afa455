package handler

import (
	"crypto/sha256"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSessionName = "diarycard-flash"

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Flashes carries one-shot messages in an encrypted client-side cookie.
// A message is queued alongside a redirect response and cleared the first
// time a page reads it; nothing is stored server-side.
type Flashes struct {
	store *sessions.CookieStore
}

// NewFlashes creates a cookie-backed flash store. Signing and encryption
// keys are derived from the session key.
func NewFlashes(sessionKey string, secure bool) *Flashes {
	authKey := sha256.Sum256([]byte(sessionKey + "auth"))
	encKey := sha256.Sum256([]byte(sessionKey + "encryption"))

	store := sessions.NewCookieStore(authKey[:], encKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300, // flashes are only meaningful across one redirect
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flashes{store: store}
}

// Add queues a flash message for the next rendered page.
func (f *Flashes) Add(w http.ResponseWriter, r *http.Request, kind, message string) {
	session, _ := f.store.Get(r, flashSessionName)
	session.AddFlash(Flash{Kind: kind, Message: message})
	session.Save(r, w)
}

// Pop returns all queued flash messages and clears them.
func (f *Flashes) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session, _ := f.store.Get(r, flashSessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removed the messages from the session; save the cleared state.
	session.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if fl, ok := v.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}
