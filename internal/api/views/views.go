package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageLanding   = "landing.html"
	PageTransport = "transport.html"
)

type LandingPage struct {
	Features []domain.Feature
	Notice   services.Notice
}

type TransportPage struct {
	Facilities   []domain.Facility
	VehicleTypes []domain.VehicleType
	Slots        []services.SlotOption
	Draft        domain.TransportOrderDraft
	TravelTime   string
	Notice       services.Notice
}

// Renderer holds one parsed template set per page, each including the layout.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"available": func(v domain.VehicleType) string {
			if v.Available == nil {
				return ""
			}
			return fmt.Sprintf("%d verfügbar", *v.Available)
		},
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PageLanding, PageTransport} {
		t, err := template.New(page).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = t
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("render: unknown page %q", page)
	}

	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	return nil
}
