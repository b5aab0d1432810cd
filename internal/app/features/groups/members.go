// internal/app/features/groups/members.go
package groups

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/members/add                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse add-member form failed", err, "Invalid form data.", "/groups")
		return
	}

	// The id is passed through untouched; a nonexistent user surfaces
	// as a backend-reported error on the page.
	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		h.renderList(w, r, groupID, "Please enter a user id.", "")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.AddMember(ctx, u.Token, groupID, userID); err != nil {
		h.renderList(w, r, groupID, backend.Message(err, "Unable to add the member."), "")
		return
	}

	h.AuditLog.MembershipChanged(r, "add", groupID, userID)
	redirectSelected(w, r, groupID, "Member added.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/members/remove                                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse remove-member form failed", err, "Invalid form data.", "/groups")
		return
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		h.renderList(w, r, groupID, "Please choose a member to remove.", "")
		return
	}
	if userID == u.ID {
		// Self-removal is never offered in the UI.
		uierrors.RenderForbidden(w, r, "You cannot remove yourself from the group.", "/groups?selected="+groupID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.RemoveMember(ctx, u.Token, groupID, userID); err != nil {
		h.renderList(w, r, groupID, backend.Message(err, "Unable to remove the member."), "")
		return
	}

	h.AuditLog.MembershipChanged(r, "remove", groupID, userID)
	redirectSelected(w, r, groupID, "Member removed.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /groups/{id}/roles/assign                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	groupID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse assign-role form failed", err, "Invalid form data.", "/groups")
		return
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	role := normalize.Role(r.FormValue("role"))

	if role != models.RoleAdmin && role != models.RoleMember {
		h.renderList(w, r, groupID, "Unknown role.", "")
		return
	}
	if userID == "" {
		h.renderList(w, r, groupID, "Please choose a member.", "")
		return
	}
	if userID == u.ID {
		uierrors.RenderForbidden(w, r, "You cannot change your own role.", "/groups?selected="+groupID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.AssignRole(ctx, u.Token, groupID, userID, role); err != nil {
		h.renderList(w, r, groupID, backend.Message(err, "Unable to change the member's role."), "")
		return
	}

	h.AuditLog.MembershipChanged(r, "role_"+role, groupID, userID)
	redirectSelected(w, r, groupID, "Role updated.")
}
