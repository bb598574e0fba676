package container

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/diinject/pkg/errors"
	"github.com/arthur-debert/diinject/pkg/logging"
)

// Factory builds one instance of a capability.
type Factory func() any

// EntryInfo is a point-in-time view of one binding.
type EntryInfo struct {
	ID     ID    `json:"id" yaml:"id" toml:"id"`
	Scope  Scope `json:"scope" yaml:"scope" toml:"scope"`
	Built  bool  `json:"built" yaml:"built" toml:"built"`
	Builds int64 `json:"builds" yaml:"builds" toml:"builds"`
}

// Options control container behavior.
type Options struct {
	// Logger receives diagnostics. If nil, the global logger with
	// component "container" is used at the time of each diagnostic.
	Logger *zerolog.Logger

	// Normalizer canonicalizes IDs on every operation. If nil, IDs are
	// used as-is.
	Normalizer func(ID) ID

	// ScopeOverrides replaces the scope passed to Register for the listed IDs.
	ScopeOverrides map[ID]Scope
}

// Option modifies Options.
type Option func(*Options)

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.Logger = &logger }
}

// WithNormalizer sets a custom ID normalizer.
func WithNormalizer(fn func(ID) ID) Option { return func(o *Options) { o.Normalizer = fn } }

// WithCaseFoldIDs enables lowercase normalization of IDs.
func WithCaseFoldIDs() Option {
	return WithNormalizer(func(id ID) ID { return ID(strings.ToLower(string(id))) })
}

// WithScopeOverrides forces the scope of the given IDs regardless of what
// the registering code asks for. Invalid scopes are ignored.
func WithScopeOverrides(overrides map[ID]Scope) Option {
	return func(o *Options) {
		if o.ScopeOverrides == nil {
			o.ScopeOverrides = make(map[ID]Scope, len(overrides))
		}
		for id, s := range overrides {
			o.ScopeOverrides[id] = s
		}
	}
}

// entry is one binding. It is replaced, never mutated, on re-registration,
// so a resolution that already holds an entry finishes against the old
// binding.
type entry struct {
	scope   Scope
	factory Factory

	mu       sync.Mutex // serializes singleton builds
	done     atomic.Bool
	instance any
	builds   atomic.Int64
}

func (e *entry) resolve() any {
	if e.scope == Transient {
		v := e.factory()
		e.builds.Add(1)
		return v
	}

	if e.done.Load() {
		return e.instance
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done.Load() {
		return e.instance
	}
	// a panicking factory leaves the entry unbuilt
	v := e.factory()
	e.builds.Add(1)
	e.instance = v
	e.done.Store(true)
	return v
}

// Container maps identifiers to bindings. It is safe for concurrent use.
type Container struct {
	mu      sync.RWMutex
	entries map[ID]*entry
	opt     Options
}

// New creates an empty container with the provided options.
func New(opts ...Option) *Container {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	c := &Container{
		entries: make(map[ID]*entry),
		opt:     o,
	}

	if len(o.ScopeOverrides) > 0 {
		overrides := make(map[ID]Scope, len(o.ScopeOverrides))
		for id, s := range o.ScopeOverrides {
			if !s.Valid() {
				c.logger().Warn().Str("id", string(id)).Str("scope", string(s)).
					Msg("Ignoring invalid scope override")
				continue
			}
			overrides[c.normalize(id)] = s
		}
		c.opt.ScopeOverrides = overrides
	}

	return c
}

func (c *Container) normalize(id ID) ID {
	if c.opt.Normalizer != nil {
		return c.opt.Normalizer(id)
	}
	return id
}

func (c *Container) logger() *zerolog.Logger {
	if c.opt.Logger != nil {
		return c.opt.Logger
	}
	l := logging.GetLogger("container")
	return &l
}

// Register binds factory to id with the given scope. Any previous binding
// for id, including a cached singleton, is discarded.
func (c *Container) Register(id ID, scope Scope, factory Factory) {
	id = c.normalize(id)

	if override, ok := c.opt.ScopeOverrides[id]; ok {
		scope = override
	}
	if !scope.Valid() {
		c.logger().Warn().Str("id", string(id)).Str("scope", string(scope)).
			Msg("Unknown scope, registering as singleton")
		scope = Singleton
	}

	e := &entry{scope: scope, factory: factory}

	c.mu.Lock()
	_, replaced := c.entries[id]
	c.entries[id] = e
	c.mu.Unlock()

	c.logger().Debug().
		Str("id", string(id)).
		Str("scope", scope.String()).
		Bool("replaced", replaced).
		Msg("Service registered")
}

// Resolve returns the instance bound to id. When id has no binding it
// returns (nil, false) and logs a warning.
func (c *Container) Resolve(id ID) (any, bool) {
	v, err := c.resolve(id)
	return v, err == nil
}

func (c *Container) resolve(id ID) (any, error) {
	id = c.normalize(id)

	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok || e.factory == nil {
		c.logger().Warn().Str("id", string(id)).Msg("Service not found")
		return nil, errors.Newf(errors.ErrNotFound, "service %q not registered", id).
			WithDetail("id", string(id))
	}

	return e.resolve(), nil
}

// Has reports whether id has a binding.
func (c *Container) Has(id ID) bool {
	id = c.normalize(id)
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[id]
	return ok
}

// Count returns the number of bindings.
func (c *Container) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// IDs returns all bound IDs in sorted order.
func (c *Container) IDs() []ID {
	c.mu.RLock()
	ids := make([]ID, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	c.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Entries returns a snapshot of all bindings sorted by ID.
func (c *Container) Entries() []EntryInfo {
	c.mu.RLock()
	items := make([]EntryInfo, 0, len(c.entries))
	for id, e := range c.entries {
		items = append(items, EntryInfo{
			ID:     id,
			Scope:  e.scope,
			Built:  e.done.Load(),
			Builds: e.builds.Load(),
		})
	}
	c.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
