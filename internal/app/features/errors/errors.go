// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/system/auth"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	UserName   string
	Message    string
	BackURL    string
}

// Handler serves the standalone error pages. The session manager is
// needed so the stale-token page can sign the user out.
type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		SessionMgr: sessionMgr,
		Log:        logger,
	}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	RenderForbidden(w, r, "", "/")
}

// Unauthorized handles the landing after the backend rejects the
// session token. The stale session is cleared so the sign-in link
// leads to a real login form instead of bouncing back here.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.Clear(w, r); err != nil {
		h.Log.Error("clear stale session", zap.Error(err))
	}
	RenderUnauthorized(w, r, "/login")
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "")
}

func userCtx(r *http.Request) (string, bool) {
	if u, ok := auth.CurrentUser(r); ok {
		return u.Name(), true
	}
	return "", false
}
