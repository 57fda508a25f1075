package stanza

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar date format used in front matter.
const DateLayout = "2006-01-02"

// Record is a raw decoded front matter record, before validation. Pointer
// fields distinguish a missing key from a zero value so that Validate can
// fail on absence rather than silently defaulting.
type Record struct {
	Title       *string  `yaml:"title"`
	Slug        *string  `yaml:"slug"`
	Description *string  `yaml:"description"`
	Date        *string  `yaml:"date"`
	Tags        []string `yaml:"tags"`
	Published   *bool    `yaml:"published"`
}

// SchemaViolation reports a front matter record that breaks the post
// contract. Field names the offending key; Value carries the rejected input.
type SchemaViolation struct {
	Field  string
	Value  any
	Reason string
}

func (e *SchemaViolation) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("stanza: schema violation: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("stanza: schema violation: field %q (value %v): %s", e.Field, e.Value, e.Reason)
}

func missing(field string) error {
	return &SchemaViolation{Field: field, Reason: "required field is missing"}
}

// Validate checks a decoded front matter record against the post contract
// and returns the normalized Post. Fields are carried over verbatim except
// tags, which are normalized to their canonical lowercase form. Validation
// is pure: the same record always yields the same result, and a broken
// record always fails hard instead of degrading to defaults.
func Validate(rec Record) (Post, error) {
	if rec.Title == nil {
		return Post{}, missing("title")
	}
	if *rec.Title == "" {
		return Post{}, &SchemaViolation{Field: "title", Value: *rec.Title, Reason: "must be non-empty"}
	}
	if rec.Slug == nil {
		return Post{}, missing("slug")
	}
	if !slugSafe(*rec.Slug) {
		return Post{}, &SchemaViolation{Field: "slug", Value: *rec.Slug, Reason: "must be a non-empty URL-safe identifier (lowercase letters, digits, hyphens)"}
	}
	if rec.Description == nil {
		return Post{}, missing("description")
	}
	if *rec.Description == "" {
		return Post{}, &SchemaViolation{Field: "description", Value: *rec.Description, Reason: "must be non-empty"}
	}
	if rec.Date == nil {
		return Post{}, missing("date")
	}
	if _, err := time.Parse(DateLayout, *rec.Date); err != nil {
		return Post{}, &SchemaViolation{Field: "date", Value: *rec.Date, Reason: "must be a valid " + DateLayout + " date"}
	}
	if rec.Published == nil {
		return Post{}, missing("published")
	}

	tags := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		if !ValidTag(t) {
			return Post{}, &SchemaViolation{Field: "tags", Value: t, Reason: "not in the permitted tag set"}
		}
		tags = append(tags, NormalizeTag(t))
	}

	return Post{
		Title:       *rec.Title,
		Slug:        *rec.Slug,
		Description: *rec.Description,
		Date:        *rec.Date,
		Tags:        tags,
		Published:   *rec.Published,
		Link:        "/blog/" + *rec.Slug,
	}, nil
}

// slugSafe reports whether s is usable as a URL path segment without
// escaping: lowercase ASCII letters, digits, interior hyphens.
func slugSafe(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// Enumerate returns the published posts in listing order: date descending,
// ties broken by slug ascending so output is deterministic across builds.
// Unpublished posts never make it past this point.
func Enumerate(posts []Post) []Post {
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// CollectTags returns the sorted, deduplicated tags carried by posts.
func CollectTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
