// Package scaffold provides the embedded content-file template used by the
// stanza CLI when creating a new post.
package scaffold

import "embed"

// Templates contains the post scaffold files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed templates
var Templates embed.FS
