package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/config"
	"github.com/km-arc/go-ioc/framework/container"
	"github.com/km-arc/go-ioc/framework/routing"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the loaded configuration.
//
// Bound names:
//   - "config"  → *config.Config
type ConfigServiceProvider struct {
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(app *container.Container) error {
	cfg := p.Config
	if cfg == nil {
		cfg = config.Load()
	}
	app.Instance("config", cfg)
	return nil
}

// ── LogServiceProvider ────────────────────────────────────────────────────────

// LogServiceProvider binds the application logger.
//
// Bound names:
//   - "log"  → *zap.Logger
type LogServiceProvider struct {
	Logger *zap.Logger
}

func (p *LogServiceProvider) Register(app *container.Container) error {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	app.Instance("log", log)
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router. The router is built
// once as an instance, so Destroy keeps every mounted route.
//
// Bound names:
//   - "router"  → *routing.Router
type RoutingServiceProvider struct {
	Logger *zap.Logger
}

func (p *RoutingServiceProvider) Register(app *container.Container) error {
	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	app.Instance("router", routing.New(log.Named("http")))
	return nil
}
