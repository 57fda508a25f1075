package stanza

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the site configuration file looked up in the
// project root when no explicit path is given.
const DefaultConfigFile = "stanza.yaml"

// SiteConfig holds all configuration for a stanza site.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	ContentDir string `yaml:"content_dir"` // Post sources (default "content")
	StaticDir  string `yaml:"static_dir"`  // Static assets copied verbatim (default "public")
	OutputDir  string `yaml:"output_dir"`  // Build destination (default "dist")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
}

// applyEnv overlays SITE_* environment variables over file values, so a
// deploy pipeline can rebrand a site without editing stanza.yaml.
func (c *SiteConfig) applyEnv() {
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = EnvOr("SITE_URL", c.URL)
	c.Description = EnvOr("SITE_DESCRIPTION", c.Description)
	c.Author = EnvOr("SITE_AUTHOR", c.Author)
}

// LoadConfig reads the site configuration from path. A missing file is not
// an error: defaults plus environment overrides still yield a usable config.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("stanza: parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return SiteConfig{}, fmt.Errorf("stanza: read config %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.setDefaults()
	return cfg, nil
}
