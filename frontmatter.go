package stanza

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelim = "---\n"

// SplitFrontMatter separates a content file into its YAML front matter block
// and the markdown body. The file must start with a "---" line and carry a
// matching closing delimiter; anything else is a hard error so a half-written
// post fails the build instead of rendering without metadata.
func SplitFrontMatter(raw string) (front, body string, err error) {
	// Tolerate CRLF line endings from editors on other platforms.
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(raw, frontMatterDelim) {
		return "", "", fmt.Errorf("stanza: content file does not start with a front matter block")
	}
	parts := strings.SplitN(raw, frontMatterDelim, 3)
	if len(parts) < 3 {
		return "", "", fmt.Errorf("stanza: front matter block is not closed")
	}
	return parts[1], parts[2], nil
}

// DecodeFrontMatter splits raw content and unmarshals the front matter into
// a Record ready for Validate. The body is returned verbatim.
func DecodeFrontMatter(raw string) (Record, string, error) {
	front, body, err := SplitFrontMatter(raw)
	if err != nil {
		return Record{}, "", err
	}
	var rec Record
	if err := yaml.Unmarshal([]byte(front), &rec); err != nil {
		return Record{}, "", fmt.Errorf("stanza: decode front matter: %w", err)
	}
	return rec, body, nil
}
