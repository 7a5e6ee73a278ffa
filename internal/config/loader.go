package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrInvalidTOML is returned when a config file cannot be parsed.
var ErrInvalidTOML = errors.New("invalid TOML")

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".gitremotes"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// RepoConfigDir is the per-repository configuration directory name.
	RepoConfigDir = ".gitremotes"

	// RepoConfigFile is the per-repository configuration file name.
	RepoConfigFile = "config.toml"

	// envPrefix prefixes environment variable overrides.
	envPrefix = "GITREMOTES_"
)

// Loader loads configuration scoped to a repository using koanf.
// Precedence order (highest to lowest):
// 1. Environment variables (GITREMOTES_*)
// 2. Repository config (<repo>/.gitremotes/config.toml)
// 3. Global config (~/.gitremotes/config.toml)
// 4. Defaults
type Loader struct {
	homeDir string
}

// NewLoader creates a Loader rooted at the user's home directory.
func NewLoader() (*Loader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return NewLoaderWithHome(homeDir), nil
}

// NewLoaderWithHome creates a Loader with a custom home directory (for testing).
func NewLoaderWithHome(homeDir string) *Loader {
	return &Loader{homeDir: homeDir}
}

// Load reads the layered configuration for the given repository path.
// Missing files are not errors; a repoPath of "" skips the repository layer.
func (l *Loader) Load(repoPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if err := l.loadTOMLFile(k, l.GlobalConfigPath()); err != nil {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if repoPath != "" {
		repoConfig := filepath.Join(repoPath, RepoConfigDir, RepoConfigFile)
		if err := l.loadTOMLFile(k, repoConfig); err != nil {
			return nil, errors.Wrap(err, "failed to load repository config")
		}
	}

	envOpt := env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform,
	}

	if err := k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *Loader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// loadTOMLFile merges one TOML file into the koanf state. A missing file
// is skipped silently.
func (*Loader) loadTOMLFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "stat %s", path)
	}

	if err := k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// GITREMOTES_PROVIDERS_DISABLED → providers.disabled
func envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, envPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// defaults returns the lowest-priority configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"providers.disabled":   []string{},
		"integrations.enabled": []string{},
	}
}
