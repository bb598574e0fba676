// Package container provides a process-wide service container that decouples
// consumers of a capability from how that capability is built.
//
// A factory is registered under an identifier together with a scope:
//
//   - Singleton: the factory runs at most once, on first resolution, and the
//     result is returned to every later caller.
//   - Transient: the factory runs on every resolution.
//
// Re-registering an identifier replaces the binding and drops any cached
// singleton. Resolving an identifier with no binding is not an error: the
// caller gets (zero, false) and a warning is logged.
//
// Typical usage:
//
//	var LoggerKey = container.NewKey[Logger]("logger")
//
//	func init() {
//	    container.Register(container.Shared(), LoggerKey, container.Singleton, NewConsoleLogger)
//	}
//
//	logger, ok := container.Resolve(container.Shared(), LoggerKey)
//
// The package does not resolve dependency graphs, detect cycles, or dispose
// singletons.
package container
