// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Everything under /groups requires authentication.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST (with optional ?selected= and ?edit=1)
		pr.Get("/", h.ServeGroupsList)

		// CREATE
		pr.Post("/", h.HandleCreateGroup)

		// EDIT / DELETE
		pr.Post("/{id}/update", h.HandleEditGroup)
		pr.Post("/{id}/delete", h.HandleDeleteGroup)

		// MEMBERSHIP
		pr.Post("/{id}/members/add", h.HandleAddMember)
		pr.Post("/{id}/members/remove", h.HandleRemoveMember)
		pr.Post("/{id}/roles/assign", h.HandleAssignRole)
	})

	return r
}
