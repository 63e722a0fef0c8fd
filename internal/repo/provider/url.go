package provider

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// ParseGitHubURL parses a GitHub URL into a RepoRef.
// Supported formats:
//   - https://github.com/owner/repo
//   - https://github.com/owner/repo.git
//   - https://github.com/owner/repo/tree/branch
//   - git@github.com:owner/repo.git
//   - github.com/owner/repo
//   - owner/repo
//
// Anything after owner/repo other than /tree/<ref> is ignored, since only the
// repository root is analysed.
func ParseGitHubURL(url string) (*model.RepoRef, error) {
	if url == "" {
		return nil, fmt.Errorf("URL cannot be empty")
	}

	url = strings.TrimSpace(url)

	// Query strings and fragments never identify a repository.
	if idx := strings.IndexAny(url, "?#"); idx != -1 {
		url = url[:idx]
	}

	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		url = strings.TrimPrefix(url, "git@github.com:")
	case strings.HasPrefix(url, "https://github.com/"):
		url = strings.TrimPrefix(url, "https://github.com/")
	case strings.HasPrefix(url, "http://github.com/"):
		url = strings.TrimPrefix(url, "http://github.com/")
	case strings.HasPrefix(url, "https://www.github.com/"):
		url = strings.TrimPrefix(url, "https://www.github.com/")
	case strings.HasPrefix(url, "github.com/"):
		url = strings.TrimPrefix(url, "github.com/")
	case strings.Contains(url, "://"), strings.HasPrefix(url, "git@"):
		return nil, fmt.Errorf("not a GitHub URL: %s", url)
	}

	return parseOwnerRepo(strings.TrimRight(url, "/"))
}

// parseOwnerRepo parses "owner/repo", "owner/repo.git" or "owner/repo/tree/ref/...".
func parseOwnerRepo(s string) (*model.RepoRef, error) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid GitHub URL format, expected owner/repo: %s", s)
	}

	owner := parts[0]
	repo := strings.TrimSuffix(parts[1], ".git")

	if owner == "" || repo == "" {
		return nil, fmt.Errorf("owner and repo cannot be empty: %s", s)
	}

	ref := &model.RepoRef{
		Provider: "github",
		Owner:    owner,
		Repo:     repo,
	}

	if len(parts) > 3 && parts[2] == "tree" {
		ref.Ref = parts[3]
	}

	return ref, nil
}

// IsLocalPath checks if a path refers to the local filesystem.
// Returns true for ".", relative paths starting with "./" or "../",
// absolute paths and file:// URLs.
func IsLocalPath(path string) bool {
	if path == "" {
		return false
	}

	if strings.HasPrefix(path, "file://") {
		return true
	}

	if path == "." || path == ".." {
		return true
	}

	if strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../") {
		return true
	}

	if strings.Contains(path, "github.com") || strings.HasPrefix(path, "git@") {
		return false
	}

	return filepath.IsAbs(path)
}

// ParseFileURL extracts the path from a file:// URL.
func ParseFileURL(url string) (string, error) {
	path := strings.TrimPrefix(url, "file://")
	if path == "" {
		return "", fmt.Errorf("file URL has no path: %s", url)
	}
	return path, nil
}
