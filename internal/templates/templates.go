// Package templates holds the HTML pages served by the API.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse parses every embedded page. Pages are looked up by file name.
func Parse() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
