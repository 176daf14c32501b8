package model

import "strings"

// ParseTags splits a comma-separated tag string. Tags are trimmed; empty and
// repeated entries are dropped and the first-seen order is kept.
func ParseTags(raw string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// MatchesTagPrefix reports whether any tag starts with term, ignoring case.
// term is expected to be trimmed and lower-cased already.
func MatchesTagPrefix(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.HasPrefix(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
