package container

import (
	"strings"

	"github.com/arthur-debert/diinject/pkg/errors"
)

// Scope is the lifecycle policy of a binding.
type Scope string

const (
	// Singleton builds the instance once, on first resolution, and reuses it.
	Singleton Scope = "singleton"

	// Transient builds a fresh instance on every resolution.
	Transient Scope = "transient"
)

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	return s == Singleton || s == Transient
}

// ParseScope parses a scope name, case-insensitively.
func ParseScope(name string) (Scope, error) {
	s := Scope(strings.ToLower(strings.TrimSpace(name)))
	if !s.Valid() {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown scope %q", name).
			WithDetail("scope", name)
	}
	return s, nil
}
