// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/policy/grouppolicy"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/app/system/viewdata"
	"github.com/geonotes/geonotes/internal/domain/models"
)

// memberRow is a member plus the controls the caller gets for it.
type memberRow struct {
	models.Member
	CanRemove bool
	CanAssign bool
	NextRole  string
	NextLabel string
}

// groupDetail is the selected group's pane: its members and the
// caller-specific control flags derived from the caller's own role.
type groupDetail struct {
	Group      models.Group
	Members    []memberRow
	CanEdit    bool
	CanDelete  bool
	CanAddUser bool
}

type groupsPageData struct {
	viewdata.BaseVM
	Groups   []models.Group
	Selected *groupDetail
	EditMode bool
	Error    string
	Success  string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /groups                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeGroupsList(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, query.Get(r, "selected"), query.Get(r, "err"), query.Get(r, "ok"))
}

// renderList fetches the group list (and the selected group's members)
// and renders the page. Mutation handlers call it directly on failure
// so the backend's detail message shows inline without losing the
// selection.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, selectedID, errMsg, okMsg string) {
	u, _ := auth.CurrentUser(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	groups, err := h.Backend.GetUserGroups(ctx, u.Token)
	if err != nil {
		h.ErrLog.LogBackendError(w, r, "get user groups", err, "Unable to load your groups.", "/")
		return
	}

	data := groupsPageData{
		BaseVM:   viewdata.NewBaseVM(r, "Groups", "/"),
		Groups:   groups,
		EditMode: query.Get(r, "edit") == "1",
		Error:    errMsg,
		Success:  okMsg,
	}

	if selectedID != "" {
		for _, g := range groups {
			if g.ID != selectedID {
				continue
			}
			detail, err := h.loadDetail(ctx, u, g)
			if err != nil {
				// The pane degrades to the list; the list itself loaded.
				h.Log.Warn("load group members failed",
					zap.String("group_id", g.ID), zap.Error(err))
				if data.Error == "" {
					data.Error = "Unable to load the group's members."
				}
				break
			}
			data.Selected = detail
			break
		}
	}

	templates.Render(w, r, "groups", data)
}

func (h *Handler) loadDetail(ctx context.Context, u *auth.SessionUser, g models.Group) (*groupDetail, error) {
	members, err := h.Backend.ListMembers(ctx, u.Token, g.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]memberRow, 0, len(members))
	for _, m := range members {
		row := memberRow{
			Member:    m,
			CanRemove: grouppolicy.CanRemoveMember(g.Role, u.ID, m),
			CanAssign: grouppolicy.CanAssignRole(g.Role, u.ID, m),
		}
		if next, ok := grouppolicy.NextRole(m); ok {
			row.NextRole = next
			if next == models.RoleAdmin {
				row.NextLabel = "Make admin"
			} else {
				row.NextLabel = "Make member"
			}
		}
		rows = append(rows, row)
	}

	return &groupDetail{
		Group:      g,
		Members:    rows,
		CanEdit:    grouppolicy.CanEditGroup(g.Role),
		CanDelete:  grouppolicy.CanDeleteGroup(g.Role),
		CanAddUser: grouppolicy.CanAddMember(g.Role),
	}, nil
}

// redirectSelected sends the browser back to the list with a group
// selected, optionally carrying a success flash.
func redirectSelected(w http.ResponseWriter, r *http.Request, groupID, okMsg string) {
	dest := "/groups"
	q := url.Values{}
	if groupID != "" {
		q.Set("selected", groupID)
	}
	if okMsg != "" {
		q.Set("ok", okMsg)
	}
	if enc := q.Encode(); enc != "" {
		dest += "?" + enc
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}
