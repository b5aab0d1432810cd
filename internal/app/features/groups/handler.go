// internal/app/features/groups/handler.go
package groups

import (
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auditlog"
)

// Handler owns the group pages: the list, the selected-group detail
// pane, and every membership mutation.
type Handler struct {
	Log      *zap.Logger
	Backend  *backend.Client
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

func NewHandler(be *backend.Client, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:      logger,
		Backend:  be,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
