package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config == nil {
		return fieldError("", "configuration cannot be nil")
	}
	if config.GitHub.Timeout < 0 {
		return fieldError("github.timeout", "timeout cannot be negative")
	}
	if err := validateAPIURL(config.GitHub.APIURL); err != nil {
		return fieldError("github.api_url", err.Error())
	}
	if config.Cache.Size < 0 {
		return fieldError("cache.size", "cache size cannot be negative")
	}
	if config.Cache.Enabled && config.Cache.Size == 0 {
		return fieldError("cache.size", "cache size must be at least 1 when the cache is enabled")
	}
	if config.Cache.TTL < 0 {
		return fieldError("cache.ttl", "TTL cannot be negative")
	}
	if config.Analysis.Concurrency < 1 {
		return fieldError("analysis.concurrency", "concurrency must be at least 1")
	}
	if config.Analysis.ReadmeMaxChars < 0 {
		return fieldError("analysis.readme_max_chars", "README limit cannot be negative")
	}
	if err := ValidateFormat(config.Output.Format); err != nil {
		return fieldError("output.format", err.Error())
	}
	return nil
}

// ValidateFormat checks that format names a supported report format or an
// alias of one.
func ValidateFormat(format string) error {
	_, err := CanonicalFormat(format)
	return err
}

// CanonicalFormat resolves a format name or alias ("md", "yml") to its
// canonical name. Both output.format and --format use it.
func CanonicalFormat(format string) (string, error) {
	if slices.Contains(SupportedFormats(), format) {
		return format, nil
	}
	if canonical, ok := formatAliases[format]; ok {
		return canonical, nil
	}
	return "", fmt.Errorf("unsupported format %q (supported: %s; aliases: md, yml)", format, strings.Join(SupportedFormats(), ", "))
}

// validateAPIURL requires an absolute http(s) URL.
func validateAPIURL(apiURL string) error {
	if strings.TrimSpace(apiURL) == "" {
		return fmt.Errorf("API URL cannot be empty")
	}
	parsedURL, err := url.Parse(apiURL)
	if err != nil {
		return fmt.Errorf("invalid URL format: %v", err)
	}
	if parsedURL.Scheme != "https" && parsedURL.Scheme != "http" {
		return fmt.Errorf("unsupported URL scheme %q (supported: https, http)", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("API URL must include a host")
	}
	return nil
}
