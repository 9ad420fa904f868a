// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

// Page names
const (
	PageIndex   = "index.html"
	PageDetail  = "detail.html"
	PageResults = "results.html"
)

var ErrUnknownPage = errors.New("unknown page")

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"naturaltime": humanize.Time,
	"plural": func(n int64, word string) string {
		return english.Plural(int(n), word, "")
	},
}

// Renderer executes the embedded HTML pages
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page once at startup.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{PageIndex, PageDetail, PageResults} {
		t, err := template.New(name).Funcs(funcs).ParseFS(files, "html/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render executes a page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, statusCode int, name string, data map[string]interface{}) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := buf.WriteTo(w)
	return err
}
