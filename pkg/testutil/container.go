package testutil

import (
	"testing"

	"github.com/arthur-debert/diinject/pkg/container"
)

// IsolateShared installs a fresh process-wide container built with opts and
// restores the previous one when the test completes. Tests using it must not
// run in parallel with other tests touching container.Shared.
func IsolateShared(t *testing.T, opts ...container.Option) *container.Container {
	t.Helper()

	prev := container.Shared()
	c := container.New(opts...)
	container.SetShared(c)
	t.Cleanup(func() { container.SetShared(prev) })

	return c
}
