// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, env); AppConfig is everything specific to this app: where
// the note-sharing backend lives, how sessions are signed, and the
// timeout knobs for outgoing calls.
type AppConfig struct {
	// Backend REST API configuration
	BackendBaseURL string        // Base URL of the note-sharing API (e.g., http://localhost:8000)
	BackendTimeout time.Duration // Per-request timeout on the outgoing HTTP client

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: geonotes-session)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte key for gorilla/csrf (falls back to SessionKey when blank)

	// Handler-side timeouts for backend calls
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
