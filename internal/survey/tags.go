package survey

import (
	"sort"
	"strings"
)

// TagSet is a set of survey answer tags (career fields, recruitment
// topics, hobbies). Tags are compared exactly as they appear in the
// form's multiple-choice options.
type TagSet map[string]struct{}

// ParseTags splits a delimiter-separated survey answer into a TagSet.
// An empty answer yields the empty set, not an error.
func ParseTags(answer, delimiter string) TagSet {
	set := make(TagSet)
	if strings.TrimSpace(answer) == "" {
		return set
	}
	for _, tag := range strings.Split(answer, delimiter) {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

// OverlapCount returns the number of tags present in both sets
func (s TagSet) OverlapCount(other TagSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for tag := range small {
		if _, ok := large[tag]; ok {
			count++
		}
	}
	return count
}

// Contains reports whether the tag is in the set
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags in lexical order
func (s TagSet) Sorted() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Join renders the set as a delimiter-separated string in lexical order
func (s TagSet) Join(delimiter string) string {
	return strings.Join(s.Sorted(), delimiter)
}
