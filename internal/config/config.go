// Package config provides configuration loading for gitremotes.
package config

import (
	"github.com/smykla-labs/gitremotes/internal/provider"
)

// Config is the root configuration schema.
type Config struct {
	// Providers configures hosting-provider classification.
	Providers ProvidersConfig `koanf:"providers" toml:"providers"`

	// Integrations lists externally configured integrations.
	Integrations IntegrationsConfig `koanf:"integrations" toml:"integrations"`
}

// ProvidersConfig configures the provider signature set.
type ProvidersConfig struct {
	// Disabled masks built-in provider kinds (e.g. "bitbucket").
	Disabled []string `koanf:"disabled" toml:"disabled"`

	// Custom lists user-declared signatures, matched before built-ins.
	Custom []CustomSignature `koanf:"custom" toml:"custom"`
}

// CustomSignature is a user-declared provider signature.
type CustomSignature struct {
	// Name is the display name, e.g. "Corp GitLab".
	Name string `koanf:"name" toml:"name"`

	// Kind is the provider kind the signature classifies as.
	Kind string `koanf:"kind" toml:"kind"`

	// Host is the host (or parent domain) the signature matches.
	Host string `koanf:"host" toml:"host"`
}

// IntegrationsConfig lists configured integrations by ID. An integration
// whose ID names a provider kind re-enables that kind even when disabled.
type IntegrationsConfig struct {
	Enabled []string `koanf:"enabled" toml:"enabled"`
}

// Signatures builds the provider signature list from the configuration.
func (c *Config) Signatures() []provider.Signature {
	custom := make([]provider.Signature, 0, len(c.Providers.Custom))

	for _, sig := range c.Providers.Custom {
		if sig.Host == "" {
			continue
		}

		custom = append(custom, provider.Signature{
			Name: sig.Name,
			Kind: provider.Kind(sig.Kind),
			Host: sig.Host,
		})
	}

	return provider.Load(custom, c.Providers.Disabled, c.Integrations.Enabled)
}
