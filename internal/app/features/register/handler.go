// internal/app/features/register/handler.go
package register

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
	uierrors "github.com/geonotes/geonotes/internal/app/features/errors"
	"github.com/geonotes/geonotes/internal/app/system/auth"
	"github.com/geonotes/geonotes/internal/app/system/normalize"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
	"github.com/geonotes/geonotes/internal/app/system/viewdata"
)

type Handler struct {
	Log     *zap.Logger
	Backend *backend.Client
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(be *backend.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Backend: be,
		ErrLog:  errLog,
	}
}

type registerFormData struct {
	viewdata.BaseVM
	Error     string
	Email     string
	FirstName string
	LastName  string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /register                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "register", registerFormData{
		BaseVM: viewdata.NewBaseVM(r, "Create account", "/login"),
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /register                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse register form failed", err, "Invalid form data.", "/register")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("password_confirm")
	firstName := normalize.Name(r.FormValue("first_name"))
	lastName := normalize.Name(r.FormValue("last_name"))

	form := registerFormData{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}

	switch {
	case email == "" || password == "" || firstName == "" || lastName == "":
		h.renderFormWithError(w, r, "Please fill in all fields.", form)
		return
	case !strings.Contains(email, "@"):
		h.renderFormWithError(w, r, "Please enter a valid email address.", form)
		return
	case password != confirm:
		h.renderFormWithError(w, r, "Passwords do not match.", form)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Backend.Register(ctx, email, password, firstName, lastName); err != nil {
		if _, ok := backend.StatusOf(err); ok {
			h.renderFormWithError(w, r, backend.Message(err, "Registration failed."), form)
			return
		}
		h.Log.Error("register request failed", zap.Error(err))
		h.renderFormWithError(w, r, "Unable to reach the server. Please try again.", form)
		return
	}

	// Account created; the user signs in with the new credentials.
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg string, form registerFormData) {
	form.BaseVM = viewdata.NewBaseVM(r, "Create account", "/login")
	form.Error = msg
	templates.Render(w, r, "register", form)
}
