// Package stanza compiles a personal blog from markdown content files into
// a static site. Each content file carries a YAML front matter block that is
// validated against a closed post metadata contract: required fields, a
// fixed tag set, and a parseable date. Broken metadata fails the build
// rather than publishing a half-filled page.
//
// The package is organized around three steps: a Loader derives Post records
// from content files, Validate/Enumerate enforce the contract and listing
// order, and a Builder renders the published posts, feed, and sitemap into
// an output directory of plain static files.
package stanza

import (
	"log"
	"os"
)

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("stanza: required environment variable %s is not set", key)
	}
	return v
}
