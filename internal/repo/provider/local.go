package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/setupguide/internal/debug"
	"github.com/tacogips/setupguide/internal/repo/model"
)

// LocalProvider implements Provider for directories on the local filesystem.
// Only the directory's own entries are listed; nothing is read recursively.
type LocalProvider struct {
	// BaseDir is the base directory for resolving relative paths.
	// If empty, uses current working directory.
	BaseDir string
}

// NewLocalProvider creates a new local filesystem provider.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// NewLocalProviderWithBase creates a new local provider with a base directory.
func NewLocalProviderWithBase(baseDir string) *LocalProvider {
	return &LocalProvider{
		BaseDir: baseDir,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// Resolve converts a local path to a RepoRef. The absolute directory path
// becomes the clone location.
func (p *LocalProvider) Resolve(path string) (model.RepoRef, error) {
	debug.Debug("[local] Resolving path: %s", path)

	originalPath := path
	if strings.HasPrefix(path, "file://") {
		var err error
		path, err = ParseFileURL(path)
		if err != nil {
			return model.RepoRef{}, NewInvalidURLError(p.Name(), originalPath, err)
		}
	}

	absPath, err := p.resolvePath(path)
	if err != nil {
		debug.Debug("[local] Path resolution failed: %v", err)
		return model.RepoRef{}, NewInvalidURLError(p.Name(), originalPath, err)
	}
	debug.Debug("[local] Absolute path: %s", absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return model.RepoRef{}, NewNotFoundError(p.Name(), originalPath)
		}
		return model.RepoRef{}, NewFetchError(p.Name(), originalPath, err)
	}
	if !info.IsDir() {
		return model.RepoRef{}, NewInvalidURLError(p.Name(), originalPath,
			fmt.Errorf("%s is not a directory", absPath))
	}

	return model.RepoRef{
		Provider: p.Name(),
		Owner:    filepath.Base(filepath.Dir(absPath)),
		Repo:     filepath.Base(absPath),
		CloneURL: absPath,
	}, nil
}

// Fetch lists the root entries of the directory. Local repositories carry no
// language or popularity metadata; Size is the sum of root file sizes in KB.
func (p *LocalProvider) Fetch(ctx context.Context, ref model.RepoRef) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewTimeoutError(p.Name(), ref.CloneURL, err)
	}

	dirEntries, err := os.ReadDir(ref.CloneURL)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(p.Name(), ref.CloneURL)
		}
		return nil, NewFetchError(p.Name(), ref.CloneURL, err)
	}

	var sizeBytes int64
	entries := make([]model.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		kind := model.EntryOther
		switch {
		case de.IsDir():
			kind = model.EntryDirectory
		case de.Type().IsRegular():
			kind = model.EntryFile
			if info, err := de.Info(); err == nil {
				sizeBytes += info.Size()
			}
		}
		entries = append(entries, model.Entry{Name: de.Name(), Kind: kind})
	}
	debug.DebugValue("[local] Entries", len(entries))

	return &model.Snapshot{
		Ref:      ref,
		Metadata: model.RepoMetadata{Size: int(sizeBytes / 1024)},
		Manifest: model.FileManifest{Entries: entries},
	}, nil
}

// Readme reads README.md from the directory root.
func (p *LocalProvider) Readme(ctx context.Context, ref model.RepoRef) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", NewTimeoutError(p.Name(), ref.CloneURL, err)
	}

	data, err := os.ReadFile(filepath.Join(ref.CloneURL, "README.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", NewFileNotFoundError(p.Name(), ref.CloneURL, "README.md")
		}
		return "", NewFetchError(p.Name(), ref.CloneURL, err)
	}
	return string(data), nil
}

// resolvePath resolves a path against BaseDir (or the working directory).
func (p *LocalProvider) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	base := p.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		base = wd
	}
	return filepath.Abs(filepath.Join(base, path))
}
