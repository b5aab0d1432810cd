// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	errorsfeature "github.com/geonotes/geonotes/internal/app/features/errors"
	groupsfeature "github.com/geonotes/geonotes/internal/app/features/groups"
	healthfeature "github.com/geonotes/geonotes/internal/app/features/health"
	loginfeature "github.com/geonotes/geonotes/internal/app/features/login"
	logoutfeature "github.com/geonotes/geonotes/internal/app/features/logout"
	mapviewfeature "github.com/geonotes/geonotes/internal/app/features/mapview"
	profilefeature "github.com/geonotes/geonotes/internal/app/features/profile"
	registerfeature "github.com/geonotes/geonotes/internal/app/features/register"
	"github.com/geonotes/geonotes/internal/app/system/auditlog"
	"github.com/geonotes/geonotes/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// GeoNotes initializes the template engine, applies session and CSRF
// middleware, and mounts the feature routers: the map (at /), login,
// register, logout, groups, and profile.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	audit := auditlog.New(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// All forms are plain POSTs; every mutation goes through CSRF checks.
	r.Use(csrf.Protect(
		[]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
	))

	// Error pages. The NotFound handler is set before any Mount so
	// the subrouters inherit it for their own unmatched paths.
	errorsHandler := errorsfeature.NewHandler(sessionMgr, logger)
	r.NotFound(errorsHandler.NotFound)
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Backend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Backend, sessionMgr, errLog, audit, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	registerHandler := registerfeature.NewHandler(deps.Backend, errLog, logger)
	r.Mount("/register", registerfeature.Routes(registerHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// The map is the home page; note mutations live under /notes.
	mapHandler := mapviewfeature.NewHandler(deps.Backend, errLog, logger)
	r.Mount("/", mapviewfeature.Routes(mapHandler, sessionMgr))

	// Group management
	groupsHandler := groupsfeature.NewHandler(deps.Backend, errLog, audit, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	// Profile and account
	profileHandler := profilefeature.NewHandler(deps.Backend, sessionMgr, errLog, audit, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

	return r, nil
}
