// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/geonotes/geonotes/internal/app/resources"
	"github.com/geonotes/geonotes/internal/app/system/timeouts"
)

// Startup runs one-time application initialization after dependencies
// are built but before the HTTP handler is. It loads shared templates
// and applies the configured timeout knobs.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	timeouts.Configure(timeouts.Config{
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Long:   appCfg.TimeoutLong,
	})

	return nil
}
