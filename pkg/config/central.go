package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/diinject/pkg/container"
	"github.com/arthur-debert/diinject/pkg/errors"
	"github.com/arthur-debert/diinject/pkg/style"
)

// Config is the complete diinject configuration
type Config struct {
	Logging   Logging   `koanf:"logging" toml:"logging" yaml:"logging"`
	Container Container `koanf:"container" toml:"container" yaml:"container"`
	Output    Output    `koanf:"output" toml:"output" yaml:"output"`

	// Source is the config file that was loaded, empty when none was found
	Source string `koanf:"-" toml:"-" yaml:"-"`
}

// Logging holds logger settings
type Logging struct {
	Verbosity int  `koanf:"verbosity" toml:"verbosity" yaml:"verbosity"`
	File      bool `koanf:"file" toml:"file" yaml:"file"`
}

// Container holds settings applied to the shared service container
type Container struct {
	CaseFold bool                       `koanf:"casefold" toml:"casefold" yaml:"casefold"`
	Scopes   map[string]container.Scope `koanf:"scopes" toml:"scopes" yaml:"scopes"`
}

// Output holds rendering settings for the CLI
type Output struct {
	Format string `koanf:"format" toml:"format" yaml:"format"`
	Color  string `koanf:"color" toml:"color" yaml:"color"`
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "logging.verbosity must be >= 0, got %d", c.Logging.Verbosity).
			WithDetail("key", "logging.verbosity")
	}
	for id, scope := range c.Container.Scopes {
		if !scope.Valid() {
			return errors.Newf(errors.ErrConfigValid, "container.scopes.%s: unknown scope %q", id, scope).
				WithDetail("key", "container.scopes."+id)
		}
	}
	if _, err := style.ParseFormat(c.Output.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.format").
			WithDetail("key", "output.format")
	}
	if _, err := style.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color").
			WithDetail("key", "output.color")
	}
	return nil
}

// ContainerOptions converts the container section into container options
func (c *Config) ContainerOptions() []container.Option {
	var opts []container.Option
	if c.Container.CaseFold {
		opts = append(opts, container.WithCaseFoldIDs())
	}
	if len(c.Container.Scopes) > 0 {
		overrides := make(map[container.ID]container.Scope, len(c.Container.Scopes))
		for id, scope := range c.Container.Scopes {
			overrides[container.ID(id)] = scope
		}
		opts = append(opts, container.WithScopeOverrides(overrides))
	}
	return opts
}

// ToTOML encodes the effective configuration
func (c *Config) ToTOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode configuration")
	}
	return out, nil
}
