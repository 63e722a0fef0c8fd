package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// FileLoader implements the Loader interface for file-based configuration loading.
// Values missing from the file fall back to DefaultConfig, and SETUPGUIDE_*
// environment variables override both.
type FileLoader struct{}

// NewLoader creates a new FileLoader instance.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads configuration from the specified file path.
func (l *FileLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := newViper()
	v.SetConfigType(configType(path))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}

	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
// Environment overrides apply in both cases.
func (l *FileLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return FromEnv()
	}
	cfg, err := l.Load(path)
	if err != nil {
		// If file not found, return defaults
		if cfgErr, ok := err.(*ConfigError); ok && cfgErr.Type == ConfigNotFound {
			return FromEnv()
		}
		return nil, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (l *FileLoader) Validate(config *Config) error {
	return Validate(config)
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := newViper().Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, "", "failed to decode environment configuration", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	cleanPath := filepath.Clean(path)

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath,
			fmt.Sprintf("failed to create directory %s", dir), err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath, "failed to marshal configuration", err)
	}

	// The file may hold a token.
	if err := os.WriteFile(cleanPath, data, 0600); err != nil {
		return NewConfigErrorWithCause(ConfigWriteFailed, cleanPath, "failed to write configuration", err)
	}

	return nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Redacted returns a copy of cfg with the token masked, for display.
func Redacted(cfg *Config) *Config {
	c := *cfg
	if c.GitHub.Token != "" {
		c.GitHub.Token = "********"
	}
	return &c
}

// newViper returns an isolated viper instance seeded with DefaultConfig and
// bound to SETUPGUIDE_* environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can override keys absent
// from the file.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("github.token", d.GitHub.Token)
	v.SetDefault("github.api_url", d.GitHub.APIURL)
	v.SetDefault("github.timeout", d.GitHub.Timeout)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.size", d.Cache.Size)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("analysis.concurrency", d.Analysis.Concurrency)
	v.SetDefault("analysis.readme_max_chars", d.Analysis.ReadmeMaxChars)
	v.SetDefault("local.base_dir", d.Local.BaseDir)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
}

// configType picks the viper decoder from the file extension.
func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yml", ".yaml":
		return "yaml"
	default:
		return "yaml"
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	// Make absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
