package stanza

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/stanza/views"
)

// Builder compiles content into a static site under the output directory.
// A build is single-pass and idempotent: posts are re-derived from source
// every time and the same sources always produce the same site.
type Builder struct {
	Config SiteConfig

	logger *slog.Logger
}

// NewBuilder creates a Builder for the given site configuration.
func NewBuilder(cfg SiteConfig, logger *slog.Logger) *Builder {
	cfg.setDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Config: cfg, logger: logger}
}

// Build loads and validates all content, then writes the index page, post
// pages, tag pages, feed, sitemap, robots.txt, and static assets. The first
// schema violation aborts the build with no partial published output
// beyond what was already written.
func (b *Builder) Build(ctx context.Context) (BuildStats, error) {
	var stats BuildStats

	loader := NewLoader(b.Config.ContentDir, b.logger)
	all, err := loader.Load()
	if err != nil {
		return stats, err
	}
	posts := Enumerate(all)
	stats.Posts = len(posts)
	stats.Drafts = len(all) - len(posts)
	tags := CollectTags(posts)

	if err := os.MkdirAll(b.Config.OutputDir, 0o755); err != nil {
		return stats, fmt.Errorf("stanza: create output dir: %w", err)
	}

	site := views.Site{
		Name:        b.Config.Name,
		URL:         b.Config.URL,
		Description: b.Config.Description,
		Author:      b.Config.Author,
	}
	viewPosts := toViewPosts(posts)

	// Index page.
	if err := b.writePage(ctx, "index.html", views.Home(site, viewPosts, "", tags)); err != nil {
		return stats, err
	}
	stats.Pages++

	// One page per published post, at blog/<slug>/index.html.
	for i, p := range viewPosts {
		related := views.RelatedPosts(p, viewPosts)
		path := filepath.Join("blog", posts[i].Slug, "index.html")
		if err := b.writePage(ctx, path, views.PostPage(site, p, related)); err != nil {
			return stats, err
		}
		stats.Pages++
	}

	// One listing page per tag.
	for _, t := range tags {
		filtered := filterByTag(viewPosts, t)
		path := filepath.Join("tags", t, "index.html")
		if err := b.writePage(ctx, path, views.Home(site, filtered, t, tags)); err != nil {
			return stats, err
		}
		stats.Pages++
	}

	if err := b.writeFile("feed.xml", func(f *os.File) error {
		return WriteFeed(f, b.Config, posts)
	}); err != nil {
		return stats, err
	}
	if err := b.writeFile("sitemap.xml", func(f *os.File) error {
		return WriteSitemap(f, b.Config, posts)
	}); err != nil {
		return stats, err
	}
	if err := b.writeFile("robots.txt", func(f *os.File) error {
		_, err := fmt.Fprintf(f, "User-agent: *\nAllow: /\nSitemap: %s\n", strings.TrimRight(b.Config.URL, "/")+"/sitemap.xml")
		return err
	}); err != nil {
		return stats, err
	}

	copied, err := b.copyAssets()
	if err != nil {
		return stats, err
	}
	stats.Assets = copied

	b.logger.Info("site built",
		"posts", stats.Posts,
		"drafts", stats.Drafts,
		"pages", stats.Pages,
		"assets", stats.Assets,
		"out", b.Config.OutputDir)
	return stats, nil
}

func (b *Builder) writePage(ctx context.Context, rel string, cmp templ.Component) error {
	out := filepath.Join(b.Config.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("stanza: create dir for %s: %w", rel, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("stanza: create %s: %w", rel, err)
	}
	defer f.Close()
	if err := cmp.Render(ctx, f); err != nil {
		return fmt.Errorf("stanza: render %s: %w", rel, err)
	}
	return f.Close()
}

func (b *Builder) writeFile(rel string, write func(*os.File) error) error {
	out := filepath.Join(b.Config.OutputDir, rel)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("stanza: create %s: %w", rel, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("stanza: write %s: %w", rel, err)
	}
	return f.Close()
}

// copyAssets mirrors the static dir into the output dir under public/,
// normalizing JPEG images on the way through. A missing static dir is fine.
func (b *Builder) copyAssets() (int, error) {
	src := b.Config.StaticDir
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return 0, nil
	}
	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		out := filepath.Join(b.Config.OutputDir, "public", rel)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if isJPEG(path) {
			if err := b.copyImage(path, out); err != nil {
				return err
			}
		} else {
			if err := copyFile(path, out); err != nil {
				return err
			}
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("stanza: copy assets: %w", err)
	}
	return count, nil
}

func (b *Builder) copyImage(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	data, w, h, err := processImage(f)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	b.logger.Debug("image normalized", "src", src, "width", w, "height", h, "bytes", len(data))
	return os.WriteFile(dst, data, 0o644)
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

func toViewPosts(posts []Post) []views.Post {
	out := make([]views.Post, len(posts))
	for i, p := range posts {
		out[i] = views.Post{
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
			Date:        p.Date,
			Tags:        p.Tags,
			Link:        p.Link,
			Content:     p.Content,
		}
	}
	return out
}

func filterByTag(posts []views.Post, tag string) []views.Post {
	var out []views.Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
