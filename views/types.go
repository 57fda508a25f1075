package views

// Site holds the site-wide values templates render into every page.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// Post mirrors the validated content type rendered by templates.
type Post struct {
	Title       string
	Slug        string
	Description string
	Date        string
	Tags        []string
	Link        string
	Content     string
}
