// internal/app/features/mapview/routes.go
package mapview

import (
	"github.com/go-chi/chi/v5"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeMap)

		pr.Post("/notes/create", h.HandleCreateNote)
		pr.Post("/notes/{id}/update", h.HandleUpdateNote)
		pr.Post("/notes/{id}/delete", h.HandleDeleteNote)
	})

	return r
}
