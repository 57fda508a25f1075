package stanza

import (
	"bytes"
	"strings"
	"testing"
)

func feedConfig() SiteConfig {
	return SiteConfig{
		Name:        "Test Blog",
		URL:         "https://example.com",
		Description: "test feed",
	}
}

func TestWriteFeed(t *testing.T) {
	posts := Enumerate([]Post{
		{Slug: "a", Title: "Post A", Description: "about a", Date: "2023-09-28", Published: true},
		{Slug: "b", Title: "Post B", Description: "about b", Date: "2024-01-15", Published: true},
	})
	var buf bytes.Buffer
	if err := WriteFeed(&buf, feedConfig(), posts); err != nil {
		t.Fatalf("WriteFeed failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`<rss version="2.0">`,
		"<title>Test Blog</title>",
		"<description>test feed</description>",
		"<link>https://example.com/blog/a/</link>",
		"<link>https://example.com/blog/b/</link>",
		"<guid>https://example.com/blog/a/</guid>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("feed missing %q:\n%s", want, got)
		}
	}
	// Dates convert from calendar dates to RFC1123Z pub dates.
	if !strings.Contains(got, "<pubDate>Thu, 28 Sep 2023 00:00:00 +0000</pubDate>") {
		t.Errorf("feed missing converted pubDate:\n%s", got)
	}
	// Newest post first, matching Enumerate order.
	if strings.Index(got, "Post B") > strings.Index(got, "Post A") {
		t.Errorf("feed items out of order:\n%s", got)
	}
}

func TestWriteSitemap(t *testing.T) {
	posts := Enumerate([]Post{
		{Slug: "a", Title: "Post A", Date: "2023-09-28", Tags: []string{"neovim"}, Published: true},
	})
	var buf bytes.Buffer
	if err := WriteSitemap(&buf, feedConfig(), posts); err != nil {
		t.Fatalf("WriteSitemap failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`,
		"<loc>https://example.com</loc>",
		"<loc>https://example.com/blog/a/</loc>",
		"<lastmod>2023-09-28</lastmod>",
		"<loc>https://example.com/tags/neovim/</loc>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("sitemap missing %q:\n%s", want, got)
		}
	}
}
