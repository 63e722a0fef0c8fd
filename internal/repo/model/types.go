package model

import "strings"

// EntryKind classifies a root-level repository entry.
type EntryKind string

const (
	// EntryFile is a regular file.
	EntryFile EntryKind = "file"
	// EntryDirectory is a directory.
	EntryDirectory EntryKind = "dir"
	// EntryOther covers symlinks, submodules and anything else a provider reports.
	EntryOther EntryKind = "other"
)

// ParseEntryKind maps a provider-reported type string to an EntryKind.
func ParseEntryKind(s string) EntryKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file":
		return EntryFile
	case "dir", "directory":
		return EntryDirectory
	default:
		return EntryOther
	}
}

// Entry is a single root-level name in a repository listing.
type Entry struct {
	Name string    `json:"name" yaml:"name"`
	Kind EntryKind `json:"kind" yaml:"kind"`
}

// FileManifest is the shallow root listing of a repository.
// It is never recursive and is treated as immutable once built.
type FileManifest struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// NewFileManifest builds a manifest of regular files from names.
func NewFileManifest(names ...string) FileManifest {
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n, Kind: EntryFile})
	}
	return FileManifest{Entries: entries}
}

// FileNames returns the lowercase names of file entries in manifest order.
// Directories and other entry kinds are excluded.
func (m FileManifest) FileNames() []string {
	names := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		if e.Kind != EntryFile {
			continue
		}
		names = append(names, strings.ToLower(e.Name))
	}
	return names
}

// Len returns the number of entries of any kind.
func (m FileManifest) Len() int {
	return len(m.Entries)
}

// RepoMetadata is repository-level information reported by a provider.
// Empty strings mean the field was absent.
type RepoMetadata struct {
	Language      string `json:"language,omitempty" yaml:"language,omitempty"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Stars         int    `json:"stars" yaml:"stars"`
	Forks         int    `json:"forks" yaml:"forks"`
	Size          int    `json:"size" yaml:"size"`
	Homepage      string `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	DefaultBranch string `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
	HTMLURL       string `json:"html_url,omitempty" yaml:"html_url,omitempty"`
}

// RepoRef identifies a repository at a provider.
type RepoRef struct {
	// Provider is the provider name (e.g., "github", "local").
	Provider string `json:"provider" yaml:"provider"`
	// Owner is the repository owner.
	Owner string `json:"owner" yaml:"owner"`
	// Repo is the repository name.
	Repo string `json:"repo" yaml:"repo"`
	// Ref is the branch, tag, or commit SHA (optional).
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
	// CloneURL overrides the default clone location.
	CloneURL string `json:"clone_url,omitempty" yaml:"clone_url,omitempty"`
}

// FullName returns "owner/repo".
func (r RepoRef) FullName() string {
	if r.Owner == "" {
		return r.Repo
	}
	return r.Owner + "/" + r.Repo
}

// Snapshot is everything a provider knows about one repository.
type Snapshot struct {
	Ref      RepoRef      `json:"ref" yaml:"ref"`
	Metadata RepoMetadata `json:"metadata" yaml:"metadata"`
	Manifest FileManifest `json:"manifest" yaml:"manifest"`
}
