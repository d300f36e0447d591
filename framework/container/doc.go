// Package container provides a small name-keyed IoC container for lazily
// constructed services, per-resolve factories and component bindings.
//
// # Overview
//
// Every binding is a Constructor, func(c *Container) any, that receives the
// container so it can resolve its own dependencies. Go has no computed
// properties, so resolution is an explicit call: Make, Get, Resolve or
// TryResolve.
//
// # Services and Factories
//
//	// Service: constructed on first resolve, then reused
//	c.Service("counter", func(c *container.Container) any {
//	    return &Counter{}
//	})
//
//	// Factory: constructed on every resolve
//	c.Factory("Counter", func(c *container.Container) any {
//	    return c.BindElement(CounterClass, c.Make("counter"))
//	})
//
//	// Pre-built value
//	c.Instance("config", cfg)
//
// Registering a name again overwrites it silently and drops its cached
// instance. Destroy drops every cached instance at once; values already
// handed out are not touched.
//
// # Resolving
//
//	raw, ok := c.Get("counter")          // comma-ok
//	raw := c.Make("counter")             // panics with *NotBoundError
//	counter := container.Resolve[*Counter](c, "counter")
//	counter, err := container.TryResolve[*Counter](c, "counter")
//
// A constructor that panics propagates the panic to the resolver and caches
// nothing, so the next resolve retries.
//
// # Providers
//
//	type AppProvider struct{}
//
//	func (AppProvider) Register(c *container.Container) error {
//	    c.Service("fetchAction", func(*container.Container) any { return fetch })
//	    return nil
//	}
//
//	err := c.Register(AppProvider{})
//
// ProviderRegistry adds a boot phase (Booter) and deferred loading
// (Deferred) on top of Register.
//
// # Component bindings
//
// BindElement fixes leading constructor arguments of an element.Class and
// keeps its display name, default props, prop types and context types,
// shared by reference with the original.
package container
