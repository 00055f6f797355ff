// Package views renders the site's server-side HTML pages.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"officeweb/internal/delivery/http/middleware"
	"officeweb/internal/domain"
	"officeweb/internal/icons"
	"officeweb/internal/locale"
)

//go:embed templates
var templateFS embed.FS

// Renderer executes page templates inside the shared layouts.
type Renderer struct {
	pages   map[string]*template.Template
	catalog *locale.Catalog
	logger  *slog.Logger
}

var funcs = template.FuncMap{
	"icon": func(name string) template.HTML {
		return icons.Resolve(name).SVG(24)
	},
	"iconSized": func(name string, size int) template.HTML {
		return icons.Resolve(name).SVG(size)
	},
	"icons":    icons.All,
	"truncate": locale.Truncate,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"pagerFor": func(p *Page, pager Pager) pagerArgs {
		return pagerArgs{Page: p, Pager: pager}
	},
}

// pagerArgs is the argument of the "pagination" partial.
type pagerArgs struct {
	Page  *Page
	Pager Pager
}

// New parses every page under templates/pages together with the layouts and partials.
func New(catalog *locale.Catalog, logger *slog.Logger) (*Renderer, error) {
	return newRenderer(templateFS, catalog, logger)
}

func newRenderer(fsys fs.FS, catalog *locale.Catalog, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pages, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), catalog: catalog, logger: logger}
	for _, p := range pages {
		name := strings.TrimSuffix(path.Base(p), ".html")
		t, err := template.New(path.Base(p)).Funcs(funcs).ParseFS(fsys,
			"templates/layouts/*.html",
			"templates/partials/*.html",
			p,
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// NewPage starts a page model for req: language, switcher links and the signed-in admin.
func (r *Renderer) NewPage(req *http.Request, titleKey string) *Page {
	lang := middleware.LangFromContext(req.Context())
	p := &Page{
		Lang:      lang,
		Path:      req.URL.Path,
		Languages: locale.Options(req.URL, lang),
		catalog:   r.catalog,
	}
	if sess, ok := middleware.SessionFromContext(req.Context()); ok {
		admin := sess.Admin
		p.Admin = &admin
	}
	p.SetTitle(titleKey)
	return p
}

// Render writes page name with status. Output is buffered so a template error
// yields a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, p *Page) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.ErrorContext(req.Context(), "unknown page template", "page", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, p); err != nil {
		r.logger.ErrorContext(req.Context(), "render failed", "page", name, "path", req.URL.Path, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Page is the model every template receives. Handler-specific values go in Data.
type Page struct {
	Lang      locale.Lang
	Title     string
	Path      string
	Languages []locale.Option
	Admin     *domain.Admin
	Notice    string
	Error     string
	Errors    []string
	Data      any

	catalog *locale.Catalog
}

// SetTitle sets the document title from a message key.
func (p *Page) SetTitle(key string) {
	site := p.T("site.name")
	if key == "" {
		p.Title = site
		return
	}
	p.Title = p.T(key) + " | " + site
}

// T translates a UI message key.
func (p *Page) T(key string) string {
	return p.catalog.T(p.Lang, key)
}

// Field returns a record's translatable field in the page language.
func (p *Page) Field(v any, field string) string {
	rec, ok := localized(v)
	if !ok {
		return ""
	}
	return locale.Resolve(rec, field, p.Lang)
}

// Date formats t for the page language.
func (p *Page) Date(t domain.Timestamp) string {
	if t.IsZero() {
		return ""
	}
	return locale.FormatDate(t.Time, p.Lang)
}

// DatePtr formats an optional time.
func (p *Page) DatePtr(t *domain.Timestamp) string {
	if t == nil {
		return ""
	}
	return p.Date(*t)
}

// Count formats n with the page language's digit grouping.
func (p *Page) Count(n int) string {
	return locale.FormatCount(n, p.Lang)
}

// Active reports whether the current path is within section.
func (p *Page) Active(section string) bool {
	if section == "/" || section == "/admin" {
		return p.Path == section
	}
	return p.Path == section || strings.HasPrefix(p.Path, section+"/")
}

type localizer interface {
	Localized() locale.Record
}

// localized accepts both pointers and values of the trilingual records, since
// templates range over slices of values.
func localized(v any) (locale.Record, bool) {
	switch x := v.(type) {
	case localizer:
		return x.Localized(), true
	case domain.Post:
		return x.Localized(), true
	case domain.PostListItem:
		return x.Localized(), true
	case domain.Service:
		return x.Localized(), true
	case domain.ServiceListItem:
		return x.Localized(), true
	}
	return nil, false
}
