package container

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/km-arc/go-ioc/framework/element"
)

// ── Binding types ─────────────────────────────────────────────────────────────

// Constructor builds a value, looking up its own dependencies on c.
type Constructor func(c *Container) any

type kind int

const (
	serviceKind kind = iota // memoized until Destroy
	factoryKind             // rebuilt on every resolve
)

func (k kind) String() string {
	if k == factoryKind {
		return "factory"
	}
	return "service"
}

// binding is the tagged variant stored per name.
type binding struct {
	kind        kind
	constructor Constructor
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is a name-keyed registry of lazy services and factories.
//
// It supports:
//   - Service   (constructed on first resolve, then reused)
//   - Factory   (constructed on every resolve)
//   - Instance  (pre-built service value)
//   - Register  (batch registration through a Provider)
//   - BindElement (partial application for component classes)
//   - Destroy   (forget every constructed service)
//
// The mutex only guards the maps. Constructors run unlocked so they can
// resolve their own dependencies, which means two goroutines resolving the
// same unconstructed service at once may both construct it.
type Container struct {
	mu sync.RWMutex

	// name → binding
	bindings map[string]*binding

	// name → constructed service instance
	services map[string]any

	log *zap.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for construction and destroy events.
func WithLogger(log *zap.Logger) Option {
	return func(c *Container) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		bindings: make(map[string]*binding),
		services: make(map[string]any),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Service registers a lazy singleton. The first resolve of name calls
// constructor(c) and caches the result; later resolves return the cached
// value. Registering over an existing name drops its cached instance.
//
//	c.Service("counter", func(c *container.Container) any {
//	    return &Counter{}
//	})
func (c *Container) Service(name string, constructor Constructor) *Container {
	c.bind(name, constructor, serviceKind)
	return c
}

// Factory registers a binding whose constructor runs on every resolve.
//
//	c.Factory("Counter", func(c *container.Container) any {
//	    return c.BindElement(CounterClass, c.Make("counter"))
//	})
func (c *Container) Factory(name string, constructor Constructor) *Container {
	c.bind(name, constructor, factoryKind)
	return c
}

// Instance registers a pre-built value as a service. Destroy does not lose
// it: the next resolve hands back the same value.
//
//	c.Instance("config", cfg)
func (c *Container) Instance(name string, value any) *Container {
	return c.Service(name, func(*Container) any { return value })
}

func (c *Container) bind(name string, constructor Constructor, k kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.services, name)
	c.bindings[name] = &binding{kind: k, constructor: constructor}
}

// Register hands the container to provider so it can register several
// bindings in one call. Provider errors are returned unchanged.
//
//	if err := c.Register(basic.Provider{}); err != nil { ... }
func (c *Container) Register(provider Provider) error {
	if provider == nil {
		return ErrNilProvider
	}
	return provider.Register(c)
}

// BindElement returns class with args fixed as its leading constructor
// arguments. The result keeps class's name and metadata maps.
//
//	c.Factory("UserInfo", func(c *container.Container) any {
//	    return c.BindElement(UserInfoClass, c.Make("fetchAction"))
//	})
func (c *Container) BindElement(class *element.Class, args ...any) *element.Class {
	return element.Bind(class, args...)
}

// Destroy forgets every constructed service so the next resolve constructs
// it again. Factories are unaffected and values already handed out stay valid.
func (c *Container) Destroy() {
	c.mu.Lock()
	n := len(c.services)
	c.services = make(map[string]any)
	c.mu.Unlock()

	c.log.Debug("container destroyed", zap.Int("services", n))
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves name, panicking with *NotBoundError when nothing is
// registered under it.
//
//	counter := c.Make("counter").(*Counter)
func (c *Container) Make(name string) any {
	v, ok := c.Get(name)
	if !ok {
		panic(&NotBoundError{Name: name})
	}
	return v
}

// Get resolves name. ok is false when nothing is registered under it.
func (c *Container) Get(name string) (any, bool) {
	c.mu.RLock()
	b, bound := c.bindings[name]
	inst, built := c.services[name]
	c.mu.RUnlock()

	if !bound {
		return nil, false
	}
	if b.kind == serviceKind && built {
		return inst, true
	}

	// A panicking constructor leaves nothing cached, so the next resolve retries.
	inst = b.constructor(c)

	if b.kind == serviceKind {
		c.mu.Lock()
		// Skip the store if name was re-registered while constructing.
		if c.bindings[name] == b {
			c.services[name] = inst
		}
		c.mu.Unlock()
		c.log.Debug("service constructed", zap.String("name", name), zap.String("type", fmt.Sprintf("%T", inst)))
	}
	return inst, true
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if name has been registered.
func (c *Container) Bound(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[name]
	return ok
}

// Resolved returns true if name is a service that is currently constructed.
func (c *Container) Resolved(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.services[name]
	return ok
}

// IsFactory returns true if name is registered as a factory.
func (c *Container) IsFactory(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.bindings[name]
	return ok && b.kind == factoryKind
}

// Names returns every registered name, sorted.
func (c *Container) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
