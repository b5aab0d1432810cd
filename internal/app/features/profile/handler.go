// internal/app/features/profile/handler.go
package profile

import (
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auditlog"
	"github.com/geonotes/geonotes/internal/app/system/auth"
)

// Handler owns the profile page and account mutations. It is the only
// feature that writes the session outside of login/logout: a profile
// update returns a rotated token that must replace the stored one.
type Handler struct {
	Log        *zap.Logger
	Backend    *backend.Client
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
}

func NewHandler(be *backend.Client, sessionMgr *auth.SessionManager, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		Backend:    be,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		AuditLog:   audit,
	}
}
