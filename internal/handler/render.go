package handler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
)

//go:embed templates/*.html
var templatesFS embed.FS

// renderer renders embedded HTML pages inside the shared layout, injecting
// pending flash messages, the CSRF form field, and the current username.
type renderer struct {
	flashes *Flashes
}

func (rd *renderer) page(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		slog.Error("parse template", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	// Pop writes the clearing Set-Cookie header, so it must run before the body.
	data["Flashes"] = rd.flashes.Pop(w, r)
	data["CSRFField"] = csrf.TemplateField(r)
	if user := UserFromContext(r.Context()); user != nil {
		data["Username"] = user.Username
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("render template", "name", name, "error", err)
	}
}
