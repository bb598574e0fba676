package container

import (
	"sync"
	"sync/atomic"
)

var (
	shared   atomic.Pointer[Container]
	sharedMu sync.Mutex
)

// Shared returns the process-wide container, creating it on first call.
func Shared() *Container {
	if c := shared.Load(); c != nil {
		return c
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if c := shared.Load(); c != nil {
		return c
	}
	c := New()
	shared.Store(c)
	return c
}

// SetShared replaces the process-wide container. Bindings made on the
// previous instance are not carried over.
func SetShared(c *Container) {
	shared.Store(c)
}

// ResetShared drops the process-wide container so the next Shared call
// creates a fresh one. Intended for tests.
func ResetShared() {
	shared.Store(nil)
}
