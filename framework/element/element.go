package element

import (
	"html/template"

	"github.com/pkg/errors"

	"github.com/km-arc/go-ioc/framework/validation"
)

// ── Types ────────────────────────────────────────────────────────────────────

// Props are the attributes a component is rendered with.
type Props map[string]any

// Context carries values implicitly from ancestors to descendants.
type Context map[string]any

// PropTypes declares rule strings per prop (see package validation).
type PropTypes = validation.Rules

// ContextTypes declares which context keys a component reads or provides.
// The value is a free-form type description and is not interpreted.
type ContextTypes map[string]string

// Component is a constructed element instance.
type Component interface {
	Render(props Props, scope *Scope) (template.HTML, error)
}

// ChildContextProvider is implemented by components that expose context to
// their descendants. Every returned key must be declared in the class's
// ChildContextTypes.
type ChildContextProvider interface {
	ChildContext() Context
}

// Constructor builds a component from positional arguments.
type Constructor func(args ...any) (Component, error)

// Class is a component constructor plus the static metadata the renderer
// inspects. Metadata maps are shared, never cloned, by Bind.
type Class struct {
	Name              string
	New               Constructor
	DefaultProps      Props
	PropTypes         PropTypes
	ContextTypes      ContextTypes
	ChildContextTypes ContextTypes
}

// DisplayName returns the class name used in messages.
func (c *Class) DisplayName() string {
	if c.Name == "" {
		return "Component"
	}
	return c.Name
}

// ── Binding ──────────────────────────────────────────────────────────────────

// Bind returns a class whose constructor calls class.New with fixed
// prepended to the call-time arguments. Name and every metadata map are
// copied by reference, so later mutation of the original's maps is visible
// through the bound class.
//
//	counter := element.Bind(CounterClass, counterService)
//	c, err := counter.New()          // CounterClass.New(counterService)
func Bind(class *Class, fixed ...any) *Class {
	leading := append([]any(nil), fixed...)
	construct := class.New
	return &Class{
		Name: class.Name,
		New: func(args ...any) (Component, error) {
			all := make([]any, 0, len(leading)+len(args))
			all = append(all, leading...)
			all = append(all, args...)
			return construct(all...)
		},
		DefaultProps:      class.DefaultProps,
		PropTypes:         class.PropTypes,
		ContextTypes:      class.ContextTypes,
		ChildContextTypes: class.ChildContextTypes,
	}
}

// ErrArgument is returned by Arg when a constructor argument is missing or
// has the wrong type.
var ErrArgument = errors.New("element: bad constructor argument")

// Arg returns args[i] as T.
//
//	counter, err := element.Arg[*Counter](args, 0)
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, errors.Wrapf(ErrArgument, "index %d out of range (%d args)", i, len(args))
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, errors.Wrapf(ErrArgument, "index %d: want %T, got %T", i, zero, args[i])
	}
	return v, nil
}
