// internal/app/features/profile/account.go
package profile

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/limits"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/domain/models"
)

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxProfileFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse profile form failed", err, "Invalid form data.", "/profile")
		return
	}

	p := models.Profile{
		ID:             u.ID,
		Email:          normalize.Email(r.FormValue("email")),
		FirstName:      normalize.Name(r.FormValue("first_name")),
		LastName:       normalize.Name(r.FormValue("last_name")),
		ProfilePicture: strings.TrimSpace(r.FormValue("profile_picture")),
		Description:    strings.TrimSpace(r.FormValue("description")),
	}

	if p.Email == "" || p.FirstName == "" || p.LastName == "" {
		h.render(w, r, profilePageData{
			Profile: p,
			Error:   "Email, first name and last name are required.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	newToken, err := h.Backend.UpdateProfile(ctx, u.Token, p)
	if err != nil {
		h.render(w, r, profilePageData{
			Profile: p,
			Error:   backend.Message(err, "Unable to update your profile."),
		})
		return
	}

	// The backend bakes profile fields into the token, so a successful
	// update hands back a fresh one. Keep the old token if none came.
	if newToken != "" {
		if err := h.SessionMgr.SaveToken(w, r, newToken); err != nil {
			h.Log.Error("save rotated token failed", zap.Error(err))
		}
	}

	http.Redirect(w, r, "/profile?ok=Profile+updated.", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile/password                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse password form failed", err, "Invalid form data.", "/profile")
		return
	}

	oldPassword := r.FormValue("old_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("new_password_confirm")

	var msg string
	switch {
	case oldPassword == "" || newPassword == "":
		msg = "Please fill in both password fields."
	case newPassword != confirm:
		msg = "New passwords do not match."
	}
	if msg != "" {
		h.renderWithCurrent(w, r, profilePageData{PasswordError: msg})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// A wrong old password comes back as a backend detail message and
	// stays on the page; the stored token is untouched either way.
	if err := h.Backend.ChangePassword(ctx, u.Token, u.Email, oldPassword, newPassword); err != nil {
		h.renderWithCurrent(w, r, profilePageData{
			PasswordError: backend.Message(err, "Unable to change your password."),
		})
		return
	}

	http.Redirect(w, r, "/profile?ok=Password+changed.", http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /profile/delete                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse delete form failed", err, "Invalid form data.", "/profile")
		return
	}

	password := r.FormValue("password")
	if password == "" {
		h.renderWithCurrent(w, r, profilePageData{
			DeleteError: "Please enter your password to delete the account.",
		})
		return
	}

	// Deleting the account cascades through the user's notes and
	// memberships, so it gets the long timeout.
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Backend.DeleteAccount(ctx, u.Token, u.Email, password); err != nil {
		h.renderWithCurrent(w, r, profilePageData{
			DeleteError: backend.Message(err, "Unable to delete the account."),
		})
		return
	}

	h.AuditLog.AccountDeleted(r, u.Email)

	if err := h.SessionMgr.Clear(w, r); err != nil {
		h.Log.Error("clear session after account deletion", zap.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// renderWithCurrent re-renders the page around an inline error,
// fetching the current profile so the other sections stay populated.
func (h *Handler) renderWithCurrent(w http.ResponseWriter, r *http.Request, data profilePageData) {
	u, _ := auth.CurrentUser(r)

	data.Profile = profileFromClaims(u)
	data.Stale = true

	if u.ID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()
		if p, err := h.Backend.GetProfile(ctx, u.ID); err == nil {
			data.Profile = p
			data.Stale = false
		}
	}

	h.render(w, r, data)
}
