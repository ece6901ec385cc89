// Package render turns handler view models into HTML pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"fyyur/internal/middleware"
)

//go:embed templates
var templateFiles embed.FS

// Page is the value every template executes against.
type Page struct {
	Title   string
	Flashes []middleware.FlashMessage
	Data    any
}

// Renderer holds one parsed template set per page. It is safe for
// concurrent use once built.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	return newFromFS(templateFiles)
}

func newFromFS(fsys fs.FS) (*Renderer, error) {
	shared := []string{"templates/layout.html"}
	partials, err := fs.Glob(fsys, "templates/partials/*.html")
	if err != nil {
		return nil, err
	}
	shared = append(shared, partials...)

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(fsys, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			name := strings.TrimPrefix(file, "templates/")
			patterns := append(append([]string{}, shared...), file)
			tmpl, err := template.New("layout").Funcs(funcs).ParseFS(fsys, patterns...)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			r.pages[name] = tmpl
		}
	}
	return r, nil
}

// HTML renders page name (e.g. "pages/home.html") with status. The page is
// rendered into a buffer first so a template error still yields a clean 500.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		log.Printf("Unknown template %q", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

var funcs = template.FuncMap{
	"datetime": formatDateTime,
	"ago":      humanize.Time,
	"join":     strings.Join,
	"contains": contains,
}

func formatDateTime(t time.Time, format string) string {
	switch format {
	case "full":
		return t.UTC().Format("Monday January, 2, 2006 at 3:04PM")
	case "input":
		return t.UTC().Format("2006-01-02T15:04")
	default:
		return t.UTC().Format("Mon 01, 02, 2006 3:04PM")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
