package container

import "reflect"

// ── Provider interface ────────────────────────────────────────────────────────

// Provider registers a group of bindings against a container.
//
//	type AppProvider struct{}
//
//	func (AppProvider) Register(c *container.Container) error {
//	    c.Service("counter", func(*container.Container) any { return &Counter{} })
//	    c.Factory("Counter", func(c *container.Container) any {
//	        return c.BindElement(CounterClass, c.Make("counter"))
//	    })
//	    return nil
//	}
type Provider interface {
	Register(c *Container) error
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func(c *Container) error

func (f ProviderFunc) Register(c *Container) error { return f(c) }

// Booter is implemented by providers that need a second phase after every
// provider has registered. Boot may resolve any binding.
type Booter interface {
	Boot(c *Container) error
}

// Deferred is implemented by providers that should only register once one of
// the names they provide is first resolved.
type Deferred interface {
	Provider
	Provides() []string
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers providers against one container and runs the
// boot phase for those implementing Booter.
type ProviderRegistry struct {
	app        *Container
	booters    []Booter
	registered map[Provider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		registered: make(map[Provider]bool),
	}
}

// Register registers provider once. Deferred providers get placeholder
// services that register the provider on first resolve. Providers added
// after Boot are booted immediately.
func (r *ProviderRegistry) Register(provider Provider) error {
	if provider == nil {
		return ErrNilProvider
	}
	// Only comparable providers (pointers, plain structs) can be deduplicated.
	if reflect.TypeOf(provider).Comparable() {
		if r.registered[provider] {
			return nil
		}
		r.registered[provider] = true
	}

	if d, ok := provider.(Deferred); ok {
		r.deferProvider(d)
		return nil
	}
	return r.load(provider)
}

func (r *ProviderRegistry) load(provider Provider) error {
	if err := r.app.Register(provider); err != nil {
		return err
	}
	return r.addBooter(provider)
}

func (r *ProviderRegistry) addBooter(provider Provider) error {
	b, ok := provider.(Booter)
	if !ok {
		return nil
	}
	r.booters = append(r.booters, b)
	if r.booted {
		return b.Boot(r.app)
	}
	return nil
}

// deferProvider binds each provided name to a placeholder. The provider's
// own registration overwrites the placeholders, so the inner Make hits the
// real binding. A placeholder that runs after loading means the provider
// never registered that name. A failed or panicking Register leaves the
// provider unloaded, so the next resolve retries it.
func (r *ProviderRegistry) deferProvider(provider Deferred) {
	loaded := false
	for _, name := range provider.Provides() {
		name := name // per-iteration copy; go.mod targets go 1.21
		r.app.Service(name, func(c *Container) any {
			if loaded {
				panic(&NotBoundError{Name: name})
			}
			if err := r.app.Register(provider); err != nil {
				panic(err)
			}
			loaded = true
			if err := r.addBooter(provider); err != nil {
				panic(err)
			}
			return c.Make(name)
		})
	}
}

// Boot calls Boot on every registered Booter, stopping at the first error.
// Later calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, b := range r.booters {
		if err := b.Boot(r.app); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }
