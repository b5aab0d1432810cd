// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/system/auditlog"
	"github.com/geonotes/geonotes/internal/app/system/auth"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	AuditLog   *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		AuditLog:   audit,
	}
}

// ServeLogout handles GET /logout. The backend token is discarded
// client-side; there is no server-side session to revoke.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	email := ""
	if u, ok := auth.CurrentUser(r); ok {
		email = u.Email
	}

	if err := h.SessionMgr.Clear(w, r); err != nil {
		h.Log.Error("logout: clear session", zap.Error(err))
	}

	h.AuditLog.Logout(r, email)

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
