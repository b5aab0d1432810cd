// internal/app/features/groups/manage.go
package groups

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geonotes/geonotes/internal/app/backend"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/limits"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxProfileFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse group form failed", err, "Invalid form data.", "/groups")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	description := normalize.Name(r.FormValue("description"))
	if name == "" {
		h.renderList(w, r, "", "Please give the group a name.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.CreateGroup(ctx, u.Token, name, description); err != nil {
		h.renderList(w, r, "", backend.Message(err, "Unable to create the group."), "")
		return
	}

	redirectSelected(w, r, "", "Group created.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/update                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleEditGroup(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxProfileFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse group form failed", err, "Invalid form data.", "/groups")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	description := normalize.Name(r.FormValue("description"))
	if name == "" {
		h.renderList(w, r, groupID, "Please give the group a name.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.UpdateGroup(ctx, u.Token, groupID, name, description); err != nil {
		h.renderList(w, r, groupID, backend.Message(err, "Unable to update the group."), "")
		return
	}

	redirectSelected(w, r, groupID, "Group updated.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/delete                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Backend.DeleteGroup(ctx, u.Token, groupID); err != nil {
		h.renderList(w, r, groupID, backend.Message(err, "Unable to delete the group."), "")
		return
	}

	redirectSelected(w, r, "", "Group deleted.")
}
