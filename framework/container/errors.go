package container

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotBound is returned when nothing is registered under a name.
	ErrNotBound = errors.New("container: no binding registered")

	// ErrTypeMismatch is returned when a resolved value is not of the requested type.
	ErrTypeMismatch = errors.New("container: resolved value has unexpected type")

	// ErrNilProvider is returned by Register when given a nil provider.
	ErrNilProvider = errors.New("container: provider is nil")
)

// NotBoundError is the panic value of Make and Resolve for unknown names.
type NotBoundError struct {
	Name string
}

func (e *NotBoundError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.Name)
}

// Is reports ErrNotBound as a match.
func (e *NotBoundError) Is(target error) bool { return target == ErrNotBound }

// ── Generics helpers ──────────────────────────────────────────────────────────

// Resolve calls Make and type-asserts the result, panicking on mismatch.
//
//	// Instead of: counter := c.Make("counter").(*Counter)
//	// Write:      counter := container.Resolve[*Counter](c, "counter")
func Resolve[T any](c *Container, name string) T {
	instance := c.Make(name)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), name, instance))
	}
	return typed
}

// TryResolve is like Resolve but reports failures as errors. Constructor
// panics still propagate.
func TryResolve[T any](c *Container, name string) (T, error) {
	var zero T
	instance, ok := c.Get(name)
	if !ok {
		return zero, errors.WithStack(&NotBoundError{Name: name})
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, errors.Wrapf(ErrTypeMismatch, "[%s] resolved to %T, want %T", name, instance, zero)
	}
	return typed, nil
}
