package container

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/diinject/pkg/errors"
)

// Register binds factory to key with the given scope.
func Register[T any](c *Container, key Key[T], scope Scope, factory func() T) {
	var f Factory
	if factory != nil {
		f = func() any { return factory() }
	}
	c.Register(key.id, scope, f)
}

// Provide registers factory under TypeKey[T]. The scope defaults to Singleton.
func Provide[T any](c *Container, factory func() T, scope ...Scope) {
	s := Singleton
	if len(scope) > 0 {
		s = scope[0]
	}
	Register(c, TypeKey[T](), s, factory)
}

// Resolve returns the instance bound to key. It returns (zero, false) and
// logs a warning when key has no binding or the bound value is not a T.
func Resolve[T any](c *Container, key Key[T]) (T, bool) {
	v, err := Lookup(c, key)
	return v, err == nil
}

// Get resolves the binding made by Provide[T].
func Get[T any](c *Container) (T, bool) {
	return Resolve(c, TypeKey[T]())
}

// Lookup is Resolve with the reason for a miss: an error with code
// ErrNotFound or ErrTypeMismatch.
func Lookup[T any](c *Container, key Key[T]) (T, error) {
	var zero T

	v, err := c.resolve(key.id)
	if err != nil {
		return zero, err
	}

	if t, ok := v.(T); ok {
		return t, nil
	}
	// a nil interface value is a valid T when T is itself an interface
	if v == nil && any(zero) == nil {
		return zero, nil
	}

	want := typeName(reflect.TypeFor[T]())
	got := fmt.Sprintf("%T", v)
	c.logger().Warn().
		Str("id", string(key.id)).
		Str("want", want).
		Str("got", got).
		Msg("Service type mismatch")

	return zero, errors.Newf(errors.ErrTypeMismatch, "service %q is %s, not %s", key.id, got, want).
		WithDetails(map[string]interface{}{
			"id":   string(key.id),
			"want": want,
			"got":  got,
		})
}

// MustResolve resolves key and panics with the Lookup error, wrapped as a
// *errors.DIError carrying the same code, if it cannot.
// This is useful for wiring code where a missing binding is a programming error.
func MustResolve[T any](c *Container, key Key[T]) T {
	v, err := Lookup(c, key)
	if err != nil {
		panic(errors.Wrapf(err, errors.GetErrorCode(err), "failed to resolve %s", key))
	}
	return v
}
