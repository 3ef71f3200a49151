package export

import (
	"fmt"

	"github.com/finance-tracker/backend/internal/models"
)

// File is a rendered export.
type File struct {
	Content     []byte
	Filename    string
	ContentType string
}

// Renderer renders rows and their totals into a file.
type Renderer interface {
	Render(rows []Row, totals Totals) (File, error)
}

// DefaultRenderers returns a renderer for every supported format.
func DefaultRenderers() map[Format]Renderer {
	return map[Format]Renderer{
		FormatCSV: CSVRenderer{},
		FormatPDF: PDFRenderer{FontFamily: DefaultFontFamily},
	}
}

// Processor dispatches rendering to the renderer of a format.
//
// The renderers are fixed when the Processor is created.
type Processor struct {
	renderers map[Format]Renderer
}

// NewProcessor returns a Processor for the renderers. The map is copied.
func NewProcessor(renderers map[Format]Renderer) *Processor {
	p := &Processor{renderers: make(map[Format]Renderer, len(renderers))}
	for format, renderer := range renderers {
		p.renderers[format] = renderer
	}

	return p
}

// Render renders the rows in the format.
//
// A format without renderer is an ErrUnsupportedFormat.
func (p *Processor) Render(format Format, rows []Row, totals Totals) (File, error) {
	renderer, ok := p.renderers[format]
	if !ok {
		return File{}, fmt.Errorf("%w: no renderer is configured for '%s'", models.ErrUnsupportedFormat, format)
	}

	return renderer.Render(rows, totals)
}
