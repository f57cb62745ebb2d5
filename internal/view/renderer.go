package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/noah-isme/progress-card/internal/models"
)

const (
	reportTemplate = "report.html"
	pickerTemplate = "picker.html"
)

//go:embed templates/*.html
var defaults embed.FS

// ErrTemplate is returned when a template cannot be loaded, parsed or executed.
var ErrTemplate = errors.New("template unavailable")

// ReportPage is the data handed to report.html.
type ReportPage struct {
	StudentName string
	ClassName   string
	SectionName string
	StudentID   string
	Columns     []string
	Rows        []models.ReportRow
}

// PickerPage is the data handed to picker.html.
type PickerPage struct {
	Classes  []models.Option
	Sections []models.Option
}

// Renderer executes the HTML pages. Templates are read on every call so edits under dir
// show up without a restart; files missing from dir fall back to the embedded copies.
type Renderer struct {
	dir string
}

// NewRenderer constructs a renderer reading overrides from dir. An empty dir only uses
// the embedded templates.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Report renders the progress card page.
func (r *Renderer) Report(card *models.ProgressCard) ([]byte, error) {
	return r.render(reportTemplate, ReportPage{
		StudentName: card.StudentName,
		ClassName:   card.ClassName,
		SectionName: card.SectionName,
		StudentID:   card.RegisterNo,
		Columns:     models.ReportColumns,
		Rows:        card.Rows(),
	})
}

// Picker renders the class/section picker page.
func (r *Renderer) Picker(opts *models.PickerOptions) ([]byte, error) {
	page := PickerPage{}
	if opts != nil {
		page.Classes = opts.Classes
		page.Sections = opts.Sections
	}
	return r.render(pickerTemplate, page)
}

func (r *Renderer) render(name string, data interface{}) ([]byte, error) {
	tmpl, err := r.load(name)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrTemplate, name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) load(name string) (*template.Template, error) {
	if r.dir != "" {
		src, err := os.ReadFile(filepath.Join(r.dir, name))
		switch {
		case err == nil:
			tmpl, err := template.New(name).Parse(string(src))
			if err != nil {
				return nil, fmt.Errorf("%w: parse %s: %v", ErrTemplate, name, err)
			}
			return tmpl, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: read %s: %v", ErrTemplate, name, err)
		}
	}

	tmpl, err := template.ParseFS(defaults, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: parse embedded %s: %v", ErrTemplate, name, err)
	}
	return tmpl, nil
}
