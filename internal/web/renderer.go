// Package web renders the portal's server-side HTML pages.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"new-arrivals-chi/internal/database/models"
	"new-arrivals-chi/internal/i18n"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	baseTemplate  = "base.html"
	partialPrefix = "partial_"
	// ErrorTemplate is rendered for unknown pages and failures
	ErrorTemplate = "error.html"
)

// Page is the data every template receives
type Page struct {
	Lang      string
	Title     string
	Flashes   []string
	CSRFToken string
	User      *models.User
	Path      string
	Data      interface{}
}

// Renderer implements gin's render.HTMLRender over the embedded templates.
// Each page is parsed on top of its own copy of base.html and the shared
// partials.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every embedded page with the translation helpers bound
// to bundle.
func NewRenderer(bundle *i18n.Bundle) (*Renderer, error) {
	base, err := template.New(baseTemplate).Funcs(Funcs(bundle)).ParseFS(templateFS, "templates/"+baseTemplate, "templates/partial_*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base template: %w", err)
	}

	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		name := path.Base(page)
		if name == baseTemplate || strings.HasPrefix(name, partialPrefix) {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base template: %w", err)
		}
		tmpl, err := clone.ParseFS(templateFS, page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	if _, ok := r.templates[ErrorTemplate]; !ok {
		return nil, fmt.Errorf("missing %s", ErrorTemplate)
	}
	return r, nil
}

// Instance implements render.HTMLRender. Unknown names render the error page.
func (r *Renderer) Instance(name string, data interface{}) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		tmpl = r.templates[ErrorTemplate]
	}
	return render.HTML{
		Template: tmpl,
		Name:     baseTemplate,
		Data:     data,
	}
}

// Has reports whether a page template exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.templates[name]
	return ok
}

// Funcs returns the helpers available to every template
func Funcs(bundle *i18n.Bundle) template.FuncMap {
	return template.FuncMap{
		"t":       bundle.T,
		"langURL": LangURL,
		"otherLang": func(lang string) string {
			if lang == "es" {
				return "en"
			}
			return "es"
		},
		"weekdays": models.WeekdayNames,
		"lower":    strings.ToLower,
		"inc": func(i int) int {
			return i + 1
		},
		"contains": func(list []string, value string) bool {
			for _, item := range list {
				if item == value {
					return true
				}
			}
			return false
		},
		"dict": dict,
	}
}

// dict builds a map from alternating keys and values so partials can take
// more than one argument.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs an even number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// LangURL appends the lang query parameter to a site path, replacing any
// existing one.
func LangURL(target, lang string) string {
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("lang", lang)
	u.RawQuery = q.Encode()
	return u.String()
}
