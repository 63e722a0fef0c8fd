package setup

import (
	"strings"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// fileIndex is a lowercase view of the file entries of a manifest.
type fileIndex struct {
	names  []string
	set    map[string]struct{}
	joined string
}

func newFileIndex(m model.FileManifest) fileIndex {
	names := m.FileNames()
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return fileIndex{
		names:  names,
		set:    set,
		joined: strings.Join(names, " "),
	}
}

// has reports whether a file with exactly this (lowercase) name exists.
func (f fileIndex) has(name string) bool {
	_, ok := f.set[name]
	return ok
}

// anyContains reports whether some file name contains sub.
func (f fileIndex) anyContains(sub string) bool {
	for _, n := range f.names {
		if strings.Contains(n, sub) {
			return true
		}
	}
	return false
}

// firstOf returns the first candidate present in the index.
func (f fileIndex) firstOf(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if f.has(c) {
			return c, true
		}
	}
	return "", false
}
