// Package views renders the HTML pages from an embedded template set. Every
// page is parsed together with the shared layout, which draws the
// role-conditional navigation shell from the session state.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"storefront/internal/catalog"

	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var files embed.FS

var pages = []string{"login", "register", "products", "store", "dashboard", "notfound"}

var funcMap = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"filledStars": func(rating int) []int {
		filled, _ := catalog.Stars(rating)
		return make([]int, filled)
	},
	"emptyStars": func(rating int) []int {
		_, empty := catalog.Stars(rating)
		return make([]int, empty)
	},
}

type Renderer struct {
	templates map[string]*template.Template
	logger    zerolog.Logger
}

func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(files, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = tpl
	}

	return &Renderer{
		templates: templates,
		logger:    logger,
	}, nil
}

// Render writes the named page. Data must carry the Title and Session fields
// the layout expects.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	tpl, ok := r.templates[page]
	if !ok {
		r.logger.Error().Str("page", page).Msg("Unknown template")
		http.Error(w, "An internal error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		r.logger.Error().Err(err).Str("page", page).Msg("Template execution failed")
	}
}
