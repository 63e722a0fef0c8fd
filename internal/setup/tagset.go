package setup

// TagSet is a duplicate-free collection of tags that remembers insertion order.
// The zero value is an empty set.
type TagSet struct {
	tags []TechTag
}

// NewTagSet builds a set from tags, dropping duplicates and empty tags.
func NewTagSet(tags ...TechTag) TagSet {
	var s TagSet
	for _, t := range tags {
		s = s.with(t)
	}
	return s
}

// with returns s plus tag. Existing and empty tags are ignored.
func (s TagSet) with(tag TechTag) TagSet {
	if tag == "" || s.Has(tag) {
		return s
	}
	tags := make([]TechTag, len(s.tags), len(s.tags)+1)
	copy(tags, s.tags)
	return TagSet{tags: append(tags, tag)}
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag TechTag) bool {
	for _, t := range s.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Len returns the number of tags.
func (s TagSet) Len() int {
	return len(s.tags)
}

// Tags returns the tags in order. The slice is a copy.
func (s TagSet) Tags() []TechTag {
	return append([]TechTag(nil), s.tags...)
}

// Strings returns the tags as plain strings, in order.
func (s TagSet) Strings() []string {
	out := make([]string, len(s.tags))
	for i, t := range s.tags {
		out[i] = string(t)
	}
	return out
}
