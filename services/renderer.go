package services

import "fmt"

// ExportKind selects one of the document renderers.
type ExportKind string

const (
	ExportExcel ExportKind = "excel"
	ExportDocx  ExportKind = "docx"
	ExportPDF   ExportKind = "pdf"
)

// Renderer turns a projected quote view into document bytes with the
// metadata the transport layer needs.
type Renderer struct {
	Render      func(QuoteView) ([]byte, error)
	ContentType string
	Extension   string
}

var renderers = map[ExportKind]Renderer{
	ExportExcel: {
		Render:      GenerateExcel,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Extension:   "xlsx",
	},
	ExportDocx: {
		Render:      GenerateDocx,
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Extension:   "docx",
	},
	ExportPDF: {
		Render:      GeneratePDF,
		ContentType: "application/pdf",
		Extension:   "pdf",
	},
}

// RendererFor returns the renderer registered for kind.
func RendererFor(kind ExportKind) (Renderer, bool) {
	r, ok := renderers[kind]
	return r, ok
}

// ExportFilename is the download name for a rendered quote.
func ExportFilename(kind ExportKind, quoteNumber string) string {
	r := renderers[kind]
	return fmt.Sprintf("quote_%s.%s", quoteNumber, r.Extension)
}
