// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/app/system/viewdata"
	"github.com/geonotes/geonotes/internal/domain/models"
)

type profilePageData struct {
	viewdata.BaseVM
	Profile models.Profile

	// Stale is set when the authoritative record could not be fetched
	// and the page shows token-claim values instead.
	Stale bool

	Error         string
	Success       string
	PasswordError string
	DeleteError   string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /profile                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeProfile renders the profile page. The token claims give an
// instant (possibly stale) view; the backend record replaces it when
// the fetch succeeds. A failed fetch degrades to the claims instead of
// failing the page.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	data := profilePageData{
		Profile: profileFromClaims(u),
		Stale:   true,
		Error:   query.Get(r, "err"),
		Success: query.Get(r, "ok"),
	}

	if u.ID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
		defer cancel()

		p, err := h.Backend.GetProfile(ctx, u.ID)
		if err != nil {
			h.Log.Warn("get profile failed, showing claim values",
				zap.String("user_id", u.ID), zap.Error(err))
		} else {
			data.Profile = p
			data.Stale = false
		}
	}

	h.render(w, r, data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data profilePageData) {
	data.BaseVM = viewdata.NewBaseVM(r, "Profile", "/")
	templates.Render(w, r, "profile", data)
}

// profileFromClaims builds the fallback view from the decoded token.
// Description is not carried in the token, so it stays blank here.
func profileFromClaims(u *auth.SessionUser) models.Profile {
	return models.Profile{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.PictureURL,
	}
}
