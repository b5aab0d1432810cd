// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/backend"
)

// Deps holds back-end dependencies for the app. The only external
// system is the note-sharing REST API; all state lives there.
type Deps struct {
	Backend *backend.Client
}

// ConnectDB builds the backend API client. There is no connection to
// hold open, so this never fails on an unreachable backend; /health
// reports reachability at runtime instead.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := backend.New(appCfg.BackendBaseURL, appCfg.BackendTimeout, logger)
	logger.Info("backend client configured",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", appCfg.BackendTimeout))
	return Deps{Backend: client}, nil
}

// EnsureSchema is a no-op: the backend owns all persistence.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
