package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

var (
	// ErrNilValue is returned when a nil creator is registered.
	ErrNilValue = errors.New("registry: nil value")

	// ErrRegistryPanic is returned if Resolve panics internally (e.g. nil receiver).
	ErrRegistryPanic = errors.New("registry: panic during Resolve")
)

// DuplicateNameError is returned when a name is registered twice.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	// Example: registry: duplicate name "ford"
	return "registry: duplicate name " + strconv.Quote(e.Name)
}

// UnknownNameError is returned when a name is not registered.
type UnknownNameError struct {
	Name string

	// Known lists the registered names, sorted, to help fix typos.
	Known []string
}

// Error implements the error interface.
func (e UnknownNameError) Error() string {
	// Example: registry: unknown name "bmw" (known: audi, ford)
	msg := "registry: unknown name " + strconv.Quote(e.Name)
	if len(e.Known) > 0 {
		msg += " (known: "
		for i, k := range e.Known {
			if i > 0 {
				msg += ", "
			}
			msg += k
		}
		msg += ")"
	}
	return msg
}

// Registry is a simple in-memory name → value table.
type Registry[T any] struct {
	items map[string]T
}

// New returns an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: map[string]T{}}
}

// Register stores v under name.
//
// It fails with ErrNilValue for nil interface/pointer/func values and with
// DuplicateNameError when name is taken.
func (r *Registry[T]) Register(name string, v T) error {
	if isNil(v) {
		return fmt.Errorf("%w for name %q", ErrNilValue, name)
	}
	if _, exists := r.items[name]; exists {
		return DuplicateNameError{Name: name}
	}
	r.items[name] = v
	return nil
}

// Provide stores v under name and returns the registry for chaining.
// It panics where Register would return an error; use it for static wiring.
func (r *Registry[T]) Provide(name string, v T) *Registry[T] {
	if err := r.Register(name, v); err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the value for name, or UnknownNameError.
// Internal panics are converted into ErrRegistryPanic.
func (r *Registry[T]) Resolve(name string) (val T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			val = zero
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[name]
	if !ok {
		var zero T
		return zero, UnknownNameError{Name: name, Known: r.Names()}
	}
	return v, nil
}

// Get returns the value if present (no panic).
func (r *Registry[T]) Get(name string) (T, bool) {
	v, ok := r.items[name]
	return v, ok
}

// MustGet returns the value or panics with a helpful message.
func (r *Registry[T]) MustGet(name string) T {
	v, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("registry: missing name %q", name))
	}
	return v
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered names.
func (r *Registry[T]) Len() int { return len(r.items) }

// Clone returns a copy whose table can be extended without touching r.
// Values are shared.
func (r *Registry[T]) Clone() *Registry[T] {
	if r == nil {
		return nil
	}
	cp := &Registry[T]{items: make(map[string]T, len(r.items))}
	for k, v := range r.items {
		cp.items[k] = v
	}
	return cp
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
