// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
)

// ErrorLogger logs an error with request context and renders a
// friendly error page in one call. Handlers use it so that every
// failure path gets both a structured log line and a user-facing page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	name, signedIn := userCtx(r)
	if backURL == "" {
		backURL = "/"
	}

	w.WriteHeader(status)
	templates.Render(w, r, "error_page", pageData{
		Title:      title,
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    userMsg,
		BackURL:    backURL,
	})
}

// LogBadRequest logs a client error and renders an error page with
// a 400 status.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	e.Log.Warn(what,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, "Something went wrong", userMsg, backURL)
}

// LogServerError logs an internal failure and renders an error page
// with a 500 status.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, what string, err error, userMsg, backURL string) {
	e.Log.Error(what,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBackendError logs a failed backend call and renders an error
// page. The page shows the backend's detail message when one came
// through, otherwise the supplied fallback. A 401 means the session
// token went stale; a 403 means the backend refused the action.
// Both get their dedicated pages instead of the generic one.
func (e *ErrorLogger) LogBackendError(w http.ResponseWriter, r *http.Request, op string, err error, fallbackMsg, backURL string) {
	status := http.StatusBadGateway
	if s, ok := backend.StatusOf(err); ok {
		status = s
	}

	e.Log.Error("backend call failed",
		zap.String("op", op),
		zap.Error(err),
		zap.Int("status", status),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	switch {
	case backend.IsStatus(err, http.StatusUnauthorized):
		http.Redirect(w, r, "/unauthorized", http.StatusSeeOther)
	case backend.IsStatus(err, http.StatusForbidden):
		http.Redirect(w, r, "/forbidden", http.StatusSeeOther)
	default:
		e.render(w, r, status, "Something went wrong", backend.Message(err, fallbackMsg), backURL)
	}
}
