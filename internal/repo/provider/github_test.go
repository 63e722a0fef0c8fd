package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/setupguide/internal/repo/model"
)

var demoRef = model.RepoRef{Provider: "github", Owner: "octo", Repo: "demo"}

func newTestGitHub(t *testing.T, mux *http.ServeMux) *GitHubProvider {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewGitHubProviderWithOptions(GitHubOptions{APIURL: srv.URL, Token: "secret"})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

func TestGitHubProvider_Fetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		writeJSON(t, w, map[string]interface{}{
			"language":         "Python",
			"description":      nil,
			"stargazers_count": 42,
			"forks_count":      7,
			"size":             1024,
			"homepage":         "https://demo.example.com",
			"default_branch":   "main",
			"html_url":         "https://github.com/octo/demo",
		})
	})
	mux.HandleFunc("/repos/octo/demo/contents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]string{
			{"name": "requirements.txt", "type": "file"},
			{"name": "src", "type": "dir"},
			{"name": "vendor", "type": "submodule"},
		})
	})

	p := newTestGitHub(t, mux)
	snap, err := p.Fetch(context.Background(), demoRef)
	require.NoError(t, err)

	assert.Equal(t, demoRef, snap.Ref)
	assert.Equal(t, model.RepoMetadata{
		Language:      "Python",
		Stars:         42,
		Forks:         7,
		Size:          1024,
		Homepage:      "https://demo.example.com",
		DefaultBranch: "main",
		HTMLURL:       "https://github.com/octo/demo",
	}, snap.Metadata)
	assert.Equal(t, []model.Entry{
		{Name: "requirements.txt", Kind: model.EntryFile},
		{Name: "src", Kind: model.EntryDirectory},
		{Name: "vendor", Kind: model.EntryOther},
	}, snap.Manifest.Entries)
}

func TestGitHubProvider_Fetch_ListingFailureIsSoft(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{"language": "Go"})
	})
	mux.HandleFunc("/repos/octo/demo/contents", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	snap, err := newTestGitHub(t, mux).Fetch(context.Background(), demoRef)
	require.NoError(t, err)
	assert.Equal(t, "Go", snap.Metadata.Language)
	assert.Equal(t, 0, snap.Manifest.Len())
}

func TestGitHubProvider_Fetch_PassesRef(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeJSON(t, w, map[string]interface{}{})
	})
	mux.HandleFunc("/repos/octo/demo/contents", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "develop", r.URL.Query().Get("ref"))
		writeJSON(t, w, []map[string]string{{"name": "go.mod", "type": "file"}})
	})

	ref := demoRef
	ref.Ref = "develop"
	snap, err := newTestGitHub(t, mux).Fetch(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"go.mod"}, snap.Manifest.FileNames())
}

func TestGitHubProvider_Fetch_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		header   map[string]string
		wantType ProviderErrorType
	}{
		{"not found", http.StatusNotFound, nil, ProviderNotFound},
		{"unauthorized", http.StatusUnauthorized, nil, ProviderAuthFailed},
		{"forbidden", http.StatusForbidden, nil, ProviderAuthFailed},
		{"rate limited", http.StatusForbidden, map[string]string{"X-RateLimit-Remaining": "0"}, ProviderRateLimited},
		{"too many requests", http.StatusTooManyRequests, nil, ProviderRateLimited},
		{"server error", http.StatusBadGateway, nil, ProviderFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			})
			mux.HandleFunc("/repos/octo/demo/contents", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, []map[string]string{})
			})

			_, err := newTestGitHub(t, mux).Fetch(context.Background(), demoRef)
			require.Error(t, err)

			var perr *ProviderError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantType, perr.Type)
			assert.True(t, errors.Is(err, &ProviderError{Type: tt.wantType}))
		})
	}
}

func TestGitHubProvider_Fetch_InvalidJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})
	mux.HandleFunc("/repos/octo/demo/contents", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, []map[string]string{})
	})

	_, err := newTestGitHub(t, mux).Fetch(context.Background(), demoRef)
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ProviderInvalidResponse, perr.Type)
}

func TestGitHubProvider_Fetch_Timeout(t *testing.T) {
	mux := http.NewServeMux()
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}
	mux.HandleFunc("/repos/octo/demo", slow)
	mux.HandleFunc("/repos/octo/demo/contents", slow)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	p := NewGitHubProviderWithOptions(GitHubOptions{APIURL: srv.URL, Timeout: 50 * time.Millisecond})

	_, err := p.Fetch(context.Background(), demoRef)
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ProviderTimeout, perr.Type)
}

func TestGitHubProvider_Readme(t *testing.T) {
	content := "# Demo\n\nRun it.\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(content))
	// GitHub wraps the payload at 60 columns.
	wrapped := encoded[:10] + "\n" + encoded[10:]

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]string{"content": wrapped, "encoding": "base64"})
	})

	got, err := newTestGitHub(t, mux).Readme(context.Background(), demoRef)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestGitHubProvider_Readme_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo/contents/README.md", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := newTestGitHub(t, mux).Readme(context.Background(), demoRef)
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ProviderNotFound, perr.Type)
	assert.Contains(t, perr.Error(), "README.md not found")
}

func TestGitHubProvider_Resolve(t *testing.T) {
	p := NewGitHubProviderWithOptions(GitHubOptions{})

	ref, err := p.Resolve("https://github.com/octo/demo.git")
	require.NoError(t, err)
	assert.Equal(t, demoRef, ref)

	_, err = p.Resolve("demo")
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, ProviderInvalidURL, perr.Type)
}
