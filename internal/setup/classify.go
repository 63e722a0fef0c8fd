package setup

import (
	"strings"

	"github.com/tacogips/setupguide/internal/repo/model"
)

// Classify detects technologies from a manifest and the metadata language.
//
// A non-empty language is added first, verbatim, even when it is not a
// catalog tag. Catalog tags follow in declaration order for every entry with
// a pattern occurring inside the space-joined lowercase file names.
func Classify(manifest model.FileManifest, language string) TagSet {
	return classify(newFileIndex(manifest), language)
}

func classify(files fileIndex, language string) TagSet {
	tags := NewTagSet(TechTag(language))
	for _, entry := range catalog {
		if matchesAny(files.joined, entry.Patterns) {
			tags = tags.with(entry.Tag)
		}
	}
	return tags
}

func matchesAny(haystack string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(haystack, p) {
			return true
		}
	}
	return false
}
