package stanza

// Post is the core content type derived from a content file's front matter.
// It is re-derived from source on every build and never mutated afterwards.
type Post struct {
	Title       string
	Slug        string
	Description string
	Date        string
	Tags        []string
	Published   bool
	Link        string
	Content     string
}

// BuildStats summarizes a completed site build.
type BuildStats struct {
	Posts  int // published posts rendered
	Drafts int // posts skipped because published is false
	Pages  int // HTML pages written, including index and tag pages
	Assets int // static files copied or processed
}
