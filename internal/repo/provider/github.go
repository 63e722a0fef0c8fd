package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tacogips/setupguide/internal/debug"
	"github.com/tacogips/setupguide/internal/repo/model"
)

const (
	// DefaultGitHubAPIURL is the public GitHub REST endpoint.
	DefaultGitHubAPIURL = "https://api.github.com"
	// DefaultGitHubTimeout bounds each API request.
	DefaultGitHubTimeout = 10 * time.Second
)

// GitHubProvider implements Provider on top of the GitHub REST API.
type GitHubProvider struct {
	// HTTPClient is the HTTP client for API requests.
	HTTPClient *http.Client
	// Token is the optional GitHub personal access token.
	Token string
	// APIURL is the API base URL (for enterprise installations and tests).
	APIURL string
}

// GitHubOptions configures a GitHubProvider.
type GitHubOptions struct {
	Token   string
	APIURL  string
	Timeout time.Duration
}

// NewGitHubProviderWithOptions creates a GitHub provider, filling defaults
// for zero-valued options.
func NewGitHubProviderWithOptions(opts GitHubOptions) *GitHubProvider {
	if opts.APIURL == "" {
		opts.APIURL = DefaultGitHubAPIURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultGitHubTimeout
	}
	return &GitHubProvider{
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		Token:      opts.Token,
		APIURL:     strings.TrimRight(opts.APIURL, "/"),
	}
}

// Name returns the provider name.
func (p *GitHubProvider) Name() string {
	return "github"
}

// Resolve converts a URL string to a RepoRef.
func (p *GitHubProvider) Resolve(url string) (model.RepoRef, error) {
	ref, err := ParseGitHubURL(url)
	if err != nil {
		return model.RepoRef{}, NewInvalidURLError(p.Name(), url, err)
	}
	return *ref, nil
}

// githubRepo is the subset of GET /repos/{owner}/{repo} we read.
type githubRepo struct {
	Language        *string `json:"language"`
	Description     *string `json:"description"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Size            int     `json:"size"`
	Homepage        *string `json:"homepage"`
	DefaultBranch   string  `json:"default_branch"`
	HTMLURL         string  `json:"html_url"`
}

// githubContent is one entry of GET /repos/{owner}/{repo}/contents.
type githubContent struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// githubFile is GET /repos/{owner}/{repo}/contents/{path} for a file.
type githubFile struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Fetch retrieves repository metadata and the root listing concurrently.
// A failed listing degrades to an empty manifest; a failed metadata request
// fails the fetch.
func (p *GitHubProvider) Fetch(ctx context.Context, ref model.RepoRef) (*model.Snapshot, error) {
	debug.Debug("[github] Fetching %s", p.formatURL(ref))

	var (
		meta     model.RepoMetadata
		manifest model.FileManifest
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := p.fetchMetadata(gctx, ref)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		m, err := p.fetchManifest(gctx, ref)
		if err != nil {
			debug.Debug("[github] Root listing unavailable, continuing with empty manifest: %v", err)
			return nil
		}
		manifest = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	debug.DebugValue("[github] Language", meta.Language)
	debug.DebugValue("[github] Entries", manifest.Len())

	return &model.Snapshot{
		Ref:      ref,
		Metadata: meta,
		Manifest: manifest,
	}, nil
}

// Readme retrieves README.md from the repository root.
func (p *GitHubProvider) Readme(ctx context.Context, ref model.RepoRef) (string, error) {
	var file githubFile
	if err := p.getJSON(ctx, ref, p.repoPath(ref, "contents", "README.md"), &file); err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) && perr.Type == ProviderNotFound {
			return "", NewFileNotFoundError(p.Name(), p.formatURL(ref), "README.md")
		}
		return "", err
	}

	if file.Encoding != "base64" {
		return "", NewInvalidResponseError(p.Name(), p.formatURL(ref),
			fmt.Sprintf("unsupported README encoding %q", file.Encoding), nil)
	}

	// The decoder skips the line breaks GitHub inserts into the payload.
	data, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		return "", NewInvalidResponseError(p.Name(), p.formatURL(ref), "failed to decode README", err)
	}
	return strings.ToValidUTF8(string(data), ""), nil
}

func (p *GitHubProvider) fetchMetadata(ctx context.Context, ref model.RepoRef) (model.RepoMetadata, error) {
	var repo githubRepo
	if err := p.getJSON(ctx, ref, p.repoPath(ref), &repo); err != nil {
		return model.RepoMetadata{}, err
	}
	return model.RepoMetadata{
		Language:      deref(repo.Language),
		Description:   deref(repo.Description),
		Stars:         repo.StargazersCount,
		Forks:         repo.ForksCount,
		Size:          repo.Size,
		Homepage:      deref(repo.Homepage),
		DefaultBranch: repo.DefaultBranch,
		HTMLURL:       repo.HTMLURL,
	}, nil
}

func (p *GitHubProvider) fetchManifest(ctx context.Context, ref model.RepoRef) (model.FileManifest, error) {
	var contents []githubContent
	if err := p.getJSON(ctx, ref, p.repoPath(ref, "contents"), &contents); err != nil {
		return model.FileManifest{}, err
	}

	entries := make([]model.Entry, 0, len(contents))
	for _, c := range contents {
		entries = append(entries, model.Entry{
			Name: c.Name,
			Kind: model.ParseEntryKind(c.Type),
		})
	}
	return model.FileManifest{Entries: entries}, nil
}

// repoPath builds /repos/{owner}/{repo}[/elem...][?ref=...].
func (p *GitHubProvider) repoPath(ref model.RepoRef, elem ...string) string {
	path := fmt.Sprintf("%s/repos/%s/%s", p.APIURL, url.PathEscape(ref.Owner), url.PathEscape(ref.Repo))
	for _, e := range elem {
		path += "/" + url.PathEscape(e)
	}
	if ref.Ref != "" && len(elem) > 0 {
		path += "?ref=" + url.QueryEscape(ref.Ref)
	}
	return path
}

// getJSON performs an authenticated GET and decodes a 200 response into v.
func (p *GitHubProvider) getJSON(ctx context.Context, ref model.RepoRef, apiURL string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return NewFetchError(p.Name(), p.formatURL(ref), err)
	}

	// Add authentication if token is provided
	if p.Token != "" {
		req.Header.Set("Authorization", "token "+p.Token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	debug.Debug("[github] GET %s", apiURL)
	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return NewTimeoutError(p.Name(), p.formatURL(ref), err)
		}
		return NewFetchError(p.Name(), p.formatURL(ref), err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Continue to decode
	case http.StatusNotFound:
		return NewNotFoundError(p.Name(), p.formatURL(ref))
	case http.StatusForbidden, http.StatusTooManyRequests:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" || resp.StatusCode == http.StatusTooManyRequests {
			return NewRateLimitError(p.Name(), p.formatURL(ref))
		}
		return NewAuthError(p.Name(), p.formatURL(ref))
	case http.StatusUnauthorized:
		return NewAuthError(p.Name(), p.formatURL(ref))
	default:
		return NewFetchError(p.Name(), p.formatURL(ref),
			fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if isTimeout(err) {
			return NewTimeoutError(p.Name(), p.formatURL(ref), err)
		}
		return NewInvalidResponseError(p.Name(), p.formatURL(ref), "failed to decode API response", err)
	}
	return nil
}

// formatURL formats a RepoRef as a human-readable URL.
func (p *GitHubProvider) formatURL(ref model.RepoRef) string {
	u := fmt.Sprintf("github.com/%s/%s", ref.Owner, ref.Repo)
	if ref.Ref != "" {
		u = fmt.Sprintf("%s@%s", u, ref.Ref)
	}
	return u
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
