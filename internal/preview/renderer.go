// Package preview renders a résumé document snapshot as a printable HTML page
// in either the structured or the free-form layout.
package preview

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/jonathan/resume-builder/internal/locale"
	"github.com/jonathan/resume-builder/internal/types"
)

// RootID is the id of the element wrapping the rendered résumé.
const RootID = "resume-preview"

// Variant is a preview layout.
type Variant string

// Layout variants.
const (
	VariantStructured Variant = "structured"
	VariantFreeForm   Variant = "free-form"
)

// VariantFor returns the layout used by a template.
func VariantFor(t types.ResumeType) Variant {
	if t.IsFreeForm() {
		return VariantFreeForm
	}
	return VariantStructured
}

//go:embed templates/*.html templates/*.css
var templateFiles embed.FS

var (
	parseOnce sync.Once
	parsed    map[Variant]*template.Template
	styles    template.CSS
	parseErr  error
)

func loadTemplates() (map[Variant]*template.Template, template.CSS, error) {
	parseOnce.Do(func() {
		css, err := templateFiles.ReadFile("templates/preview.css")
		if err != nil {
			parseErr = &TemplateError{Message: "failed to read stylesheet", Cause: err}
			return
		}
		styles = template.CSS(css)

		parsed = make(map[Variant]*template.Template, 2)
		for variant, file := range map[Variant]string{
			VariantStructured: "templates/structured.html",
			VariantFreeForm:   "templates/freeform.html",
		} {
			tmpl, err := template.ParseFS(templateFiles, "templates/layout.html", file)
			if err != nil {
				parseErr = &TemplateError{Message: "failed to parse " + file, Cause: err}
				return
			}
			parsed[variant] = tmpl
		}
	})
	return parsed, styles, parseErr
}

type page struct {
	Lang      string
	PageTitle string
	CSS       template.CSS
	Zoom      int
	Scale     string
	Variant   Variant
	Type      types.ResumeType
	Data      any
}

// Renderer renders previews with the formatter of one wizard session.
type Renderer struct {
	formatter *locale.Formatter
}

// NewRenderer creates a renderer bound to f. Locale switches on f apply to
// subsequent renders.
func NewRenderer(f *locale.Formatter) *Renderer {
	return &Renderer{formatter: f}
}

// Render writes the HTML preview of doc at the given zoom. The document is
// only read.
func (r *Renderer) Render(w io.Writer, doc types.ResumeDocument, zoom Zoom) error {
	templates, css, err := loadTemplates()
	if err != nil {
		return err
	}

	variant := VariantFor(doc.Type)
	p := page{
		Lang:      string(r.formatter.Locale()),
		PageTitle: r.formatter.Text(locale.MsgResumeTitle),
		CSS:       css,
		Zoom:      zoom.Percent(),
		Scale:     zoom.Scale(),
		Variant:   variant,
		Type:      doc.Type,
	}
	if variant == VariantFreeForm {
		data := buildFreeForm(doc)
		p.Lang = string(locale.English)
		if data.Name != "" {
			p.PageTitle = data.Name
		}
		p.Data = data
	} else {
		p.Data = buildStructured(doc, r.formatter)
	}

	if err := templates[variant].ExecuteTemplate(w, "layout", p); err != nil {
		return &RenderError{Message: "failed to execute " + string(variant) + " template", Cause: err}
	}
	return nil
}

// RenderString renders the preview into a string.
func (r *Renderer) RenderString(doc types.ResumeDocument, zoom Zoom) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc, zoom); err != nil {
		return "", err
	}
	return buf.String(), nil
}
