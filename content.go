package stanza

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// contentGlob matches post source files anywhere under the content dir.
const contentGlob = "**/*.md"

// Loader reads and validates every content file under a directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{dir: dir, logger: logger}
}

// Load parses and validates all content files and returns the derived posts,
// drafts included. Ordering and published filtering are Enumerate's job.
// Any schema violation, duplicate slug, or slug/filename mismatch aborts the
// load with the offending path so broken content never reaches a build.
func (l *Loader) Load() ([]Post, error) {
	matches, err := doublestar.Glob(os.DirFS(l.dir), contentGlob)
	if err != nil {
		return nil, fmt.Errorf("stanza: scan content dir %s: %w", l.dir, err)
	}

	seen := make(map[string]string, len(matches)) // slug -> path
	posts := make([]Post, 0, len(matches))
	for _, rel := range matches {
		path := filepath.Join(l.dir, filepath.FromSlash(rel))
		post, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[post.Slug]; dup {
			return nil, fmt.Errorf("stanza: %s: duplicate slug %q (already used by %s)", path, post.Slug, prev)
		}
		seen[post.Slug] = path
		posts = append(posts, post)
	}
	l.logger.Debug("content loaded", "dir", l.dir, "posts", len(posts))
	return posts, nil
}

func (l *Loader) loadFile(path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("stanza: read %s: %w", path, err)
	}
	rec, body, err := DecodeFrontMatter(string(raw))
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", path, err)
	}
	post, err := Validate(rec)
	if err != nil {
		return Post{}, fmt.Errorf("%s: %w", path, err)
	}
	if stem := fileStem(path); post.Slug != stem {
		return Post{}, fmt.Errorf("stanza: %s: slug %q does not match file name %q", path, post.Slug, stem)
	}
	post.Content = body
	return post, nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
