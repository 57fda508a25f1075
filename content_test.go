package stanza

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContent(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func postFile(slug, date string, published bool, tags ...string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("title: \"Post " + slug + "\"\n")
	sb.WriteString("slug: " + slug + "\n")
	sb.WriteString("description: about " + slug + "\n")
	sb.WriteString("date: \"" + date + "\"\n")
	sb.WriteString("tags:\n")
	for _, t := range tags {
		sb.WriteString("  - " + t + "\n")
	}
	if published {
		sb.WriteString("published: true\n")
	} else {
		sb.WriteString("published: false\n")
	}
	sb.WriteString("---\n\nBody of " + slug + ".\n")
	return sb.String()
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "alpha.md", postFile("alpha", "2023-09-28", true, "neovim"))
	writeContent(t, dir, "beta.md", postFile("beta", "2024-01-15", false, "go", "workflow"))
	writeContent(t, dir, "2024/gamma.md", postFile("gamma", "2024-03-01", true))

	posts, err := NewLoader(dir, nil).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("Load returned %d posts, want 3", len(posts))
	}
	bySlug := make(map[string]Post)
	for _, p := range posts {
		bySlug[p.Slug] = p
	}
	if !strings.Contains(bySlug["alpha"].Content, "Body of alpha.") {
		t.Errorf("alpha body = %q", bySlug["alpha"].Content)
	}
	if bySlug["beta"].Published {
		t.Error("beta should be a draft")
	}
	if _, ok := bySlug["gamma"]; !ok {
		t.Error("nested content file was not loaded")
	}
}

func TestLoaderUnknownTag(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "alpha.md", postFile("alpha", "2023-09-28", true, "rust"))

	_, err := NewLoader(dir, nil).Load()
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Field != "tags" {
		t.Errorf("violation names field %q, want tags", sv.Field)
	}
	if !strings.Contains(err.Error(), "alpha.md") {
		t.Errorf("error should name the offending file: %v", err)
	}
}

func TestLoaderSlugFilenameMismatch(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "alpha.md", postFile("beta", "2023-09-28", true))

	_, err := NewLoader(dir, nil).Load()
	if err == nil || !strings.Contains(err.Error(), "does not match file name") {
		t.Errorf("got %v, want slug/filename mismatch error", err)
	}
}

func TestLoaderDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "2023/alpha.md", postFile("alpha", "2023-09-28", true))
	writeContent(t, dir, "2024/alpha.md", postFile("alpha", "2024-01-01", true))

	_, err := NewLoader(dir, nil).Load()
	if err == nil || !strings.Contains(err.Error(), "duplicate slug") {
		t.Errorf("got %v, want duplicate slug error", err)
	}
}

func TestLoaderMissingField(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "alpha.md", "---\ntitle: \"A\"\nslug: alpha\n---\nbody\n")

	_, err := NewLoader(dir, nil).Load()
	var sv *SchemaViolation
	if !errors.As(err, &sv) {
		t.Fatalf("got %v, want SchemaViolation", err)
	}
	if sv.Field != "description" {
		t.Errorf("violation names field %q, want description", sv.Field)
	}
}

func TestLoaderEmptyDir(t *testing.T) {
	posts, err := NewLoader(t.TempDir(), nil).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Load returned %d posts, want 0", len(posts))
	}
}
