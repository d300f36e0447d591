package app

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/config"
	"github.com/km-arc/go-ioc/framework/container"
	"github.com/km-arc/go-ioc/framework/element"
	gohttp "github.com/km-arc/go-ioc/framework/http"
	"github.com/km-arc/go-ioc/framework/logging"
	"github.com/km-arc/go-ioc/framework/providers"
	"github.com/km-arc/go-ioc/framework/routing"
)

const shutdownTimeout = 5 * time.Second

// Application embeds the container and a provider registry so user code can
// call app.Service(), app.Factory(), app.Register() directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New loads configuration from envFiles, builds the logger and registers
// the framework providers.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)
	log, err := logging.New(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return NewWith(cfg, log)
}

// NewWith is New with an explicit configuration and logger.
func NewWith(cfg *config.Config, log *zap.Logger) (*Application, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c := container.New(container.WithLogger(log.Named("container")))
	a := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
	}

	for _, p := range []container.Provider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LogServiceProvider{Logger: log},
		&providers.RoutingServiceProvider{Logger: log},
	} {
		if err := a.Register(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Register adds a provider through the registry.
func (a *Application) Register(provider container.Provider) error {
	if err := a.Providers.Register(provider); err != nil {
		return errors.Wrapf(err, "register %T", provider)
	}
	return nil
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return errors.Wrap(err, "boot providers")
	}
	return nil
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Log resolves *zap.Logger from the container.
func (a *Application) Log() *zap.Logger {
	return container.Resolve[*zap.Logger](a.Container, "log")
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.Resolve[*routing.Router](a.Container, "router")
}

// ── Components ────────────────────────────────────────────────────────────────

// Component resolves the element class registered under name.
func (a *Application) Component(name string) (*element.Class, error) {
	if !a.Bound(name) {
		return nil, errors.Wrapf(gohttp.ErrClassNotFound, "[%s]", name)
	}
	return container.TryResolve[*element.Class](a.Container, name)
}

// Render resolves name and renders it with props.
func (a *Application) Render(name string, props element.Props) (template.HTML, error) {
	class, err := a.Component(name)
	if err != nil {
		return "", err
	}
	return element.Render(class, props, nil)
}

// Mount serves the component registered under name at pattern. The class
// is resolved per request.
//
//	app.Mount("/", "App")
func (a *Application) Mount(pattern, name string) {
	resolve := func() (*element.Class, error) { return a.Component(name) }
	a.Router().Get(pattern, gohttp.Component(resolve, nil, a.Log()).ServeHTTP)
}

// ── Serve ─────────────────────────────────────────────────────────────────────

// Run boots the application and serves HTTP on APP_PORT until ctx is done.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(); err != nil {
		return err
	}

	cfg := a.Config()
	log := a.Log()
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("app", cfg.App.Name), zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	a.Destroy()
	return nil
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
