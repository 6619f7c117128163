// Package templates provides embedded HTML pages for the web surface.
package templates

import (
	"embed"
	"html/template"
	"io"
)

//go:embed *.gohtml
var fs embed.FS

var pages = template.Must(template.ParseFS(fs, "*.gohtml"))

// Render writes the named page filled with data into w.
func Render(w io.Writer, name string, data interface{}) error {
	return pages.ExecuteTemplate(w, name, data)
}
