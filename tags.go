package stanza

import "strings"

// TagSetVersion identifies the revision of the closed tag set below. Bump it
// whenever a tag is added or removed so downstream consumers (navigation,
// feeds) can detect that the taxonomy changed.
const TagSetVersion = 3

// AllTags is the closed set of permitted post tags, in display order.
// A tag outside this set is a contract violation, not a new taxonomy entry:
// extending the set means editing this list, not publishing the post.
var AllTags = []string{
	"go",
	"homelab",
	"linux",
	"meta",
	"neovim",
	"web",
	"workflow",
}

var tagSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllTags))
	for _, t := range AllTags {
		m[t] = struct{}{}
	}
	return m
}()

// ValidTag reports whether t belongs to the closed tag set.
// Comparison is case-insensitive and ignores surrounding whitespace.
func ValidTag(t string) bool {
	_, ok := tagSet[NormalizeTag(t)]
	return ok
}

// NormalizeTag returns the canonical form of a tag: lowercase, trimmed.
func NormalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
