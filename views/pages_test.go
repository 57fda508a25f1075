package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestHomeRendersPosts(t *testing.T) {
	site := Site{Name: "Blog", URL: "https://example.com"}
	posts := []Post{
		{Title: "First", Slug: "first", Description: "one", Date: "2024-01-01", Link: "/blog/first"},
	}
	var buf bytes.Buffer
	if err := Home(site, posts, "", []string{"go"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h2>First</h2>",
		`datetime="2024-01-01"`,
		`href="/tags/go/"`,
		`"@type":"WebSite"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomeActiveTag(t *testing.T) {
	site := Site{Name: "Blog", URL: "https://example.com"}
	var buf bytes.Buffer
	if err := Home(site, nil, "go", []string{"go", "web"}).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "tag-pill-active") {
		t.Errorf("active tag not highlighted: %s", got)
	}
	if !strings.Contains(got, "https://example.com/tags/go/") {
		t.Errorf("canonical URL should point at tag page: %s", got)
	}
}

func TestPostPageRendersMarkdown(t *testing.T) {
	site := Site{Name: "Blog", URL: "https://example.com"}
	post := Post{
		Title:       "Hello",
		Slug:        "hello",
		Description: "greeting",
		Date:        "2024-01-01",
		Tags:        []string{"meta"},
		Link:        "/blog/hello",
		Content:     "# Heading\n\nSome **bold** text.",
	}
	var buf bytes.Buffer
	if err := PostPage(site, post, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"<h1>Hello</h1>",
		"<h1>Heading</h1>",
		"<strong>bold</strong>",
		`"@type":"BlogPosting"`,
		`property="og:type" content="article"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("post page missing %q", want)
		}
	}
}

func TestPostPageEscapesTitle(t *testing.T) {
	site := Site{Name: "Blog", URL: "https://example.com"}
	post := Post{Title: "<b>sneaky</b>", Slug: "x", Description: "d", Date: "2024-01-01", Content: "body"}
	var buf bytes.Buffer
	if err := PostPage(site, post, nil).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(buf.String(), "<b>sneaky</b>") {
		t.Error("post title rendered unescaped")
	}
}
