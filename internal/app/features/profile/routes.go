// internal/app/features/profile/routes.go
package profile

import (
	"github.com/go-chi/chi/v5"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeProfile)
		pr.Post("/", h.HandleUpdateProfile)
		pr.Post("/password", h.HandleChangePassword)
		pr.Post("/delete", h.HandleDeleteAccount)
	})

	return r
}
