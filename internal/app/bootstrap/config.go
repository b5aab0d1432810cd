// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GeoNotes.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_base_url, session_name, etc.
//   - Environment variables: GEONOTES_BACKEND_BASE_URL, GEONOTES_SESSION_NAME, etc.
//   - Command-line flags: --backend_base_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_base_url", Default: "http://localhost:8000/api/v1", Desc: "Base URL of the note-sharing REST backend"},
	{Name: "backend_timeout", Default: "15s", Desc: "Per-request timeout for outgoing backend calls"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "geonotes-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "csrf_key", Default: "", Desc: "32-byte CSRF signing key (falls back to session_key)"},

	// Handler-side timeouts around backend calls
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for a single backend call"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for page loads issuing several backend calls"},
	{Name: "timeout_long", Default: "30s", Desc: "Timeout for confirmed destructive operations"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GEONOTES", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendBaseURL: appValues.String("backend_base_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 15*time.Second),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 30*time.Second),
	}

	if appCfg.CSRFKey == "" {
		appCfg.CSRFKey = appCfg.SessionKey
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// GeoNotes validates the backend URL format to catch configuration
// errors early, before the first request fails.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.BackendBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid backend base URL", zap.String("backend_base_url", appCfg.BackendBaseURL))
		return fmt.Errorf("invalid backend_base_url %q: need scheme and host", appCfg.BackendBaseURL)
	}

	if coreCfg.Env == "prod" && appCfg.SessionKey == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("session_key still has the dev default; set a strong key in production")
	}

	return nil
}
