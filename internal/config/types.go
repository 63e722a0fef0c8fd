package config

// Config represents the global setupguide configuration.
type Config struct {
	// GitHub configuration for repository access.
	GitHub GitHubConfig `mapstructure:"github" yaml:"github" json:"github"`
	// Cache configuration for fetched repository snapshots.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache" json:"cache"`
	// Analysis configuration for batch analysis and README handling.
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis" json:"analysis"`
	// Local configuration for repositories on disk.
	Local LocalConfig `mapstructure:"local" yaml:"local" json:"local"`
	// Output configuration for display.
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
}

// GitHubConfig represents GitHub-specific settings.
type GitHubConfig struct {
	// Token is the GitHub personal access token for private repositories.
	Token string `mapstructure:"token" yaml:"token,omitempty" json:"token,omitempty"`
	// APIURL is the GitHub API URL (for enterprise installations).
	APIURL string `mapstructure:"api_url" yaml:"api_url" json:"api_url"`
	// Timeout is the request timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
}

// CacheConfig represents in-memory snapshot cache settings.
type CacheConfig struct {
	// Enabled indicates whether fetched snapshots are cached.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	// Size is the maximum number of cached repositories.
	Size int `mapstructure:"size" yaml:"size" json:"size"`
	// TTL is the cache time-to-live in seconds (0 = no expiration).
	TTL int `mapstructure:"ttl" yaml:"ttl" json:"ttl"`
}

// AnalysisConfig represents analysis settings.
type AnalysisConfig struct {
	// Concurrency bounds the number of repositories analyzed at once.
	Concurrency int `mapstructure:"concurrency" yaml:"concurrency" json:"concurrency"`
	// ReadmeMaxChars truncates README content (0 = no truncation).
	ReadmeMaxChars int `mapstructure:"readme_max_chars" yaml:"readme_max_chars" json:"readme_max_chars"`
}

// LocalConfig represents local-directory settings.
type LocalConfig struct {
	// BaseDir resolves relative local paths ("./project"); empty means the
	// working directory.
	BaseDir string `mapstructure:"base_dir" yaml:"base_dir,omitempty" json:"base_dir,omitempty"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Format is the default report format: text, markdown, json or yaml.
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" yaml:"color" json:"color"`
}
