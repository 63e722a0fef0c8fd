package provider

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tacogips/setupguide/internal/debug"
	"github.com/tacogips/setupguide/internal/repo/model"
)

// CachingProvider memoizes Fetch and Readme results of another provider in
// bounded, expiring LRU caches. Cached snapshots are shared between callers
// and must be treated as read-only.
type CachingProvider struct {
	inner     Provider
	snapshots *expirable.LRU[string, *model.Snapshot]
	readmes   *expirable.LRU[string, string]
}

// NewCachingProvider wraps inner. A size <= 0 means unbounded; a ttl <= 0
// means entries never expire.
func NewCachingProvider(inner Provider, size int, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		inner:     inner,
		snapshots: expirable.NewLRU[string, *model.Snapshot](size, nil, ttl),
		readmes:   expirable.NewLRU[string, string](size, nil, ttl),
	}
}

// Name returns the wrapped provider's name.
func (p *CachingProvider) Name() string {
	return p.inner.Name()
}

// Resolve delegates to the wrapped provider.
func (p *CachingProvider) Resolve(url string) (model.RepoRef, error) {
	return p.inner.Resolve(url)
}

// Fetch returns a cached snapshot or fetches and caches a new one.
// Errors are never cached.
func (p *CachingProvider) Fetch(ctx context.Context, ref model.RepoRef) (*model.Snapshot, error) {
	key := cacheKey(p.inner.Name(), ref)
	if snap, ok := p.snapshots.Get(key); ok {
		debug.Debug("[cache] Snapshot hit: %s", key)
		return snap, nil
	}

	debug.Debug("[cache] Snapshot miss: %s", key)
	snap, err := p.inner.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	p.snapshots.Add(key, snap)
	return snap, nil
}

// Readme returns a cached README or fetches and caches it.
func (p *CachingProvider) Readme(ctx context.Context, ref model.RepoRef) (string, error) {
	key := cacheKey(p.inner.Name(), ref)
	if readme, ok := p.readmes.Get(key); ok {
		debug.Debug("[cache] README hit: %s", key)
		return readme, nil
	}

	readme, err := p.inner.Readme(ctx, ref)
	if err != nil {
		return "", err
	}
	p.readmes.Add(key, readme)
	return readme, nil
}

// Len returns the number of cached snapshots.
func (p *CachingProvider) Len() int {
	return p.snapshots.Len()
}

func cacheKey(provider string, ref model.RepoRef) string {
	key := provider + ":" + ref.Provider + ":" + ref.Owner + "/" + ref.Repo
	if ref.CloneURL != "" {
		key += "|" + ref.CloneURL
	}
	if ref.Ref != "" {
		key += "@" + ref.Ref
	}
	return key
}
