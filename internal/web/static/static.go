// Package static exposes embedded web assets for HTTP serving.
package static

import "embed"

//go:embed *.css
var FS embed.FS
