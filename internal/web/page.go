package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page serves the inventory form and stock table shell. All data flows
// through the JSON endpoints; the template itself is static.
type Page struct {
	tmpl *template.Template
}

// NewPage parses the embedded templates.
func NewPage() (*Page, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Page{tmpl: tmpl}, nil
}

// Index handles GET /.
func (p *Page) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}
