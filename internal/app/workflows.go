package app

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tacogips/setupguide/internal/config"
	"github.com/tacogips/setupguide/internal/repo/provider"
)

// NormalizeRepoURL normalizes a repository URL to a consistent format.
// Handles various URL formats (full URL, short form, owner/repo, local path).
func NormalizeRepoURL(url string) string {
	url = strings.TrimSpace(url)

	// Check for local paths first (before modifying URL)
	if provider.IsLocalPath(url) {
		return url
	}

	// If it's already a full URL or git@ format, return as-is
	if strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "git@") {
		return url
	}

	// If it starts with github.com/, prepend https://
	if strings.HasPrefix(url, "github.com/") || strings.HasPrefix(url, "www.github.com/") {
		return "https://" + url
	}

	// If it's owner/repo format (contains / but not github.com), assume GitHub
	if strings.Contains(url, "/") {
		return "https://github.com/" + url
	}

	// Otherwise, return as-is and let the provider reject it
	return url
}

// TruncateReadme cuts s to at most max runes and appends "..." when
// anything was removed. max <= 0 disables truncation.
func TruncateReadme(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// ProviderOptions describes how to build the provider used by a workflow.
type ProviderOptions struct {
	// Config holds the GitHub token, API URL, timeout and base directory.
	Config provider.ProviderConfig
	// CacheEnabled wraps the provider in an LRU snapshot cache.
	CacheEnabled bool
	// CacheSize is the maximum number of cached repositories.
	CacheSize int
	// CacheTTL is the cache entry lifetime (0 = no expiration).
	CacheTTL time.Duration
}

// ProviderOptionsFromConfig maps the global configuration onto ProviderOptions.
// local.base_dir is expanded ("~", relative) when possible.
func ProviderOptionsFromConfig(cfg *config.Config, token string) ProviderOptions {
	baseDir := cfg.Local.BaseDir
	if expanded, err := config.ExpandPath(baseDir); err == nil {
		baseDir = expanded
	}
	return ProviderOptions{
		Config: provider.ProviderConfig{
			GitHubToken:  token,
			GitHubAPIURL: cfg.GitHub.APIURL,
			Timeout:      time.Duration(cfg.GitHub.Timeout) * time.Second,
			BaseDir:      baseDir,
		},
		CacheEnabled: cfg.Cache.Enabled,
		CacheSize:    cfg.Cache.Size,
		CacheTTL:     time.Duration(cfg.Cache.TTL) * time.Second,
	}
}

// NewProvider builds a registry of the GitHub and local providers,
// optionally behind a snapshot cache.
func NewProvider(opts ProviderOptions) provider.Provider {
	var p provider.Provider = provider.NewRegistry(opts.Config)
	if opts.CacheEnabled {
		p = provider.NewCachingProvider(p, opts.CacheSize, opts.CacheTTL)
	}
	return p
}

// describeRef returns a short human-readable repository name for messages.
func describeRef(owner, repo string) string {
	if owner == "" {
		return repo
	}
	return fmt.Sprintf("%s/%s", owner, repo)
}
