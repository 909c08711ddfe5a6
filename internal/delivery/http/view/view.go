// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	PageLogin     = "login.html"
	PageDashboard = "dashboard.html"
	PageEdit      = "edit.html"
	PageError     = "error.html"
)

var pages = []string{PageLogin, PageDashboard, PageEdit, PageError}

// Page is the data every template receives.
type Page struct {
	Title     string
	Principal *entity.Principal
	Flash     string
	Errors    map[string]string
	Message   string

	Form      dto.PatientRequest
	Filter    dto.DateRangeQuery
	Dashboard *dto.DashboardResponse
	Patient   *dto.PatientResponse
	Username  string
}

// CanWrite reports whether the viewer may change patient records.
func (p Page) CanWrite() bool {
	return p.Principal.Can(entity.PermissionPatientWrite)
}

// CanExport reports whether the viewer may download the spreadsheet.
func (p Page) CanExport() bool {
	return p.Principal.Can(entity.PermissionPatientExport)
}

type Renderer struct {
	log       *logrus.Logger
	templates map[string]*template.Template
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	r := &Renderer{
		log:       log,
		templates: make(map[string]*template.Template, len(pages)),
	}

	for _, page := range pages {
		tmpl, err := template.New("layout.html").ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}

	return r, nil
}

// Render executes page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) {
	tmpl, ok := r.templates[page]
	if !ok {
		r.log.Errorf("Unknown template %s", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		r.log.Warnf("Failed to render %s: %+v", page, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RenderError shows the generic error page.
func (r *Renderer) RenderError(w http.ResponseWriter, status int, principal *entity.Principal, message string) {
	r.Render(w, status, PageError, Page{
		Title:     http.StatusText(status),
		Principal: principal,
		Message:   message,
	})
}
