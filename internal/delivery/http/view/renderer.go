// Package view renders the site's HTML pages.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"legalsite/internal/domain/entity"
	"legalsite/internal/domain/service"
	"legalsite/internal/errors"
	"legalsite/internal/locale"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

//nolint:gochecknoglobals
var pageNames = []string{PageHome, PageService, PageSearch, PageBlog, PageBlogPost, PageNotFound, PageError}

// Static returns the bundled assets (stylesheet and placeholder images).
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

// Renderer implements echo.Renderer over one template set per page.
type Renderer struct {
	pages       map[string]*template.Template
	rich        service.RichTextRenderer
	placeholder string
	logger      *slog.Logger
}

// NewRenderer parses every page template. Images without a usable URL are
// rendered with placeholder.
func NewRenderer(rich service.RichTextRenderer, placeholder string, logger *slog.Logger) (*Renderer, error) {
	r := &Renderer{
		pages:       make(map[string]*template.Template, len(pageNames)),
		rich:        rich,
		placeholder: placeholder,
		logger:      logger,
	}

	for _, name := range pageNames {
		tmpl, err := template.New(name).
			Funcs(r.funcs()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s template", name)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

// Render executes the layout of page name with data.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page template %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(lc locale.Context, key string) string {
			return Translate(lc.Language, key)
		},
		"text": func(lc locale.Context, txt entity.LocalizedText) string {
			return txt.Get(lc.Language)
		},
		"rich": r.richText,
		"media": func(asset *entity.MediaAsset) string {
			return asset.URLOr(r.placeholder)
		},
		"url": func(lc locale.Context, path string) string {
			if path == "/" {
				return "/" + lc.Lang()
			}

			return "/" + lc.Lang() + path
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return t.Format("2006-01-02")
		},
		"year": func() int {
			return time.Now().Year()
		},
		"add": func(a, b int) int {
			return a + b
		},
		"dict": func(pairs ...any) (map[string]any, error) {
			if len(pairs)%2 != 0 {
				return nil, errors.New("dict needs key/value pairs")
			}
			m := make(map[string]any, len(pairs)/2)
			for i := 0; i < len(pairs); i += 2 {
				key, ok := pairs[i].(string)
				if !ok {
					return nil, errors.Errorf("dict key %v is not a string", pairs[i])
				}
				m[key] = pairs[i+1]
			}

			return m, nil
		},
	}
}

// richText renders CMS markup. Bodies come from the site's own content
// service, so the output is trusted.
func (r *Renderer) richText(lc locale.Context, txt entity.LocalizedText) template.HTML {
	source := txt.Get(lc.Language)
	if r.rich == nil {
		return template.HTML(template.HTMLEscapeString(source)) //nolint:gosec
	}

	out, err := r.rich.Render(source)
	if err != nil {
		r.logger.Warn("rich text render failed", slog.Any("error", err))

		return template.HTML(template.HTMLEscapeString(source)) //nolint:gosec
	}

	return template.HTML(out) //nolint:gosec
}
