package element

import (
	"html/template"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/km-arc/go-ioc/framework/validation"
)

// PropError reports props that failed their class's PropTypes.
type PropError struct {
	Errors *validation.Errors
}

func (e *PropError) Error() string {
	return "element: invalid props for " + e.Errors.Component + ": " + e.Errors.Error()
}

// ErrUndeclaredChildContext is returned when a component provides a child
// context key its class does not declare in ChildContextTypes.
var ErrUndeclaredChildContext = errors.New("element: child context key not declared")

// Scope is handed to Component.Render. Context holds only the keys the
// rendering class declares in ContextTypes.
type Scope struct {
	Context Context

	// visible to children: ancestors' context plus this component's child context
	inherited Context
}

// Render renders a child class with the context inherited through this scope.
func (s *Scope) Render(class *Class, props Props) (template.HTML, error) {
	return Render(class, props, s.inherited)
}

// Render is the component runtime: it merges DefaultProps under props,
// converts string values to the types PropTypes declare, validates the
// result, constructs the component with no
// call-time arguments and renders it.
//
//	html, err := element.Render(container.Resolve[*element.Class](c, "App"), nil, nil)
func Render(class *Class, props Props, ctx Context) (template.HTML, error) {
	if class == nil || class.New == nil {
		return "", errors.New("element: nil class")
	}

	merged := resolveProps(class, props)
	validation.Coerce(merged, class.PropTypes)
	if errs := validation.Validate(class.DisplayName(), merged, class.PropTypes); errs != nil {
		return "", &PropError{Errors: errs}
	}

	component, err := class.New()
	if err != nil {
		return "", errors.Wrapf(err, "construct %s", class.DisplayName())
	}

	scope := &Scope{
		Context:   maskContext(ctx, class.ContextTypes),
		inherited: ctx,
	}

	if provider, ok := component.(ChildContextProvider); ok {
		child := provider.ChildContext()
		if undeclared := undeclaredKeys(child, class.ChildContextTypes); len(undeclared) > 0 {
			return "", errors.Wrapf(ErrUndeclaredChildContext, "%s: %s", class.DisplayName(), strings.Join(undeclared, ", "))
		}
		scope.inherited = mergeContext(ctx, child)
	}

	return component.Render(merged, scope)
}

// resolveProps copies props over the class defaults. Nil values fall back to
// the default, like an undefined prop would.
func resolveProps(class *Class, props Props) Props {
	merged := make(Props, len(class.DefaultProps)+len(props))
	for k, v := range class.DefaultProps {
		merged[k] = v
	}
	for k, v := range props {
		if v == nil {
			if _, ok := class.DefaultProps[k]; ok {
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

func maskContext(ctx Context, types ContextTypes) Context {
	out := make(Context, len(types))
	for k := range types {
		if v, ok := ctx[k]; ok {
			out[k] = v
		}
	}
	return out
}

func mergeContext(parent, child Context) Context {
	out := make(Context, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

func undeclaredKeys(ctx Context, types ContextTypes) []string {
	var out []string
	for k := range ctx {
		if _, ok := types[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
