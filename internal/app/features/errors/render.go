// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	name, signedIn := userCtx(r)
	if backURL == "" {
		backURL = "/login"
	}

	w.WriteHeader(http.StatusUnauthorized)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Sign in required",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    "Please sign in to continue.",
		BackURL:    backURL,
	})
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	name, signedIn := userCtx(r)
	if backURL == "" {
		backURL = httpnav.ResolveBackURL(r, "/")
	}
	if msg == "" {
		msg = "You don't have permission to do that."
	}

	w.WriteHeader(http.StatusForbidden)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Access denied",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	})
}

// RenderNotFound shows a friendly "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	name, signedIn := userCtx(r)
	if msg == "" {
		msg = "The page you're looking for doesn't exist."
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:      "Not found",
		IsLoggedIn: signedIn,
		UserName:   name,
		Message:    msg,
		BackURL:    httpnav.ResolveBackURL(r, "/"),
	})
}
