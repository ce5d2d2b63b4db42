// Package templates embeds the storefront's HTML views.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every view. Page templates are named after their file
// ("catalog.html") and share the "head", "header" and "foot" blocks.
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}
