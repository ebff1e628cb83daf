package rest

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/Karan-Chaurasia/AI-Dictionary/internal/domain"
)

//go:embed templates/page.html
var templateFS embed.FS

type pageRenderer struct {
	tmpl *template.Template
}

func newPageRenderer() *pageRenderer {
	return &pageRenderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/page.html")),
	}
}

// pageData mirrors LookupResponse so both presentations carry the same content.
type pageData struct {
	Word              string
	CorrectedWord     string
	CorrectionMessage string
	FormulaLatex      string
	Recipe            *RecipeResponse
	Definitions       []string
	Error             string
	HasResult         bool
}

func (p *pageRenderer) render(w io.Writer, res *domain.LookupResult) error {
	data := pageData{}
	if res != nil {
		body := NewLookupResponse(*res)
		data = pageData{
			Word:         body.OriginalWord,
			FormulaLatex: body.FormulaLatex,
			Recipe:       body.Recipe,
			Definitions:  body.Definitions,
			Error:        body.Error,
			HasResult:    true,
		}
		if body.CorrectedWord != nil {
			data.CorrectedWord = *body.CorrectedWord
			data.CorrectionMessage = *body.CorrectionMessage
		}
	}

	// Render into a buffer so a template failure never leaves half a page.
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}
