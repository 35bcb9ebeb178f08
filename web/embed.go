// Package web embeds the templates and static assets of the solver UI.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var assets embed.FS

// Templates parses the embedded page templates. Parse errors are
// programming errors, caught at startup.
func Templates() *template.Template {
	return template.Must(template.ParseFS(assets, "templates/*.tmpl"))
}

// StaticFS exposes the static asset tree rooted at static/.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
