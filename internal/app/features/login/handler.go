// internal/app/features/login/handler.go
package login

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auditlog"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/app/system/viewdata"
)

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

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	ReturnURL string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		ReturnURL: query.Get(r, "return"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse login form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	ret := strings.TrimSpace(r.FormValue("return"))

	if email == "" || password == "" {
		h.renderFormWithError(w, r, "Please enter your email and password.", email, ret)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token, err := h.Backend.Login(ctx, email, password)
	if err != nil {
		if _, ok := backend.StatusOf(err); ok {
			// Rejected credentials get one generic message; the exact
			// reason is not disclosed to the browser.
			h.AuditLog.LoginFailed(r, email, backend.Message(err, "rejected"))
			h.renderFormWithError(w, r, "Invalid email or password.", email, ret)
			return
		}
		h.Log.Error("login request failed", zap.Error(err))
		h.renderFormWithError(w, r, "Unable to reach the server. Please try again.", email, ret)
		return
	}

	if err := h.SessionMgr.SaveToken(w, r, token); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("email", email))
		h.renderFormWithError(w, r, "Unable to create session. Please try again.", email, ret)
		return
	}

	h.AuditLog.LoginSuccess(r, email)

	dest := urlutil.SafeReturn(ret, "", "/")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, email, ret string) {
	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:     msg,
		Email:     email,
		ReturnURL: ret,
	})
}
