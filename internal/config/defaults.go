package config

import (
	"os"
	"path/filepath"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. SETUPGUIDE_GITHUB_TIMEOUT.
const EnvPrefix = "SETUPGUIDE"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			Token:   "",
			APIURL:  "https://api.github.com",
			Timeout: 10,
		},
		Cache: CacheConfig{
			Enabled: true,
			Size:    128,
			TTL:     600,
		},
		Analysis: AnalysisConfig{
			Concurrency:    4,
			ReadmeMaxChars: 2000,
		},
		Local: LocalConfig{
			BaseDir: "",
		},
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
	}
}

// SupportedFormats returns the canonical report format names.
func SupportedFormats() []string {
	return []string{FormatText, FormatMarkdown, FormatJSON, FormatYAML}
}

// formatAliases maps short names to canonical format names.
var formatAliases = map[string]string{
	"md":  FormatMarkdown,
	"yml": FormatYAML,
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "setupguide", "config.yaml")
}
