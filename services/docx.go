package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Minimal WordprocessingML writer. A .docx file is a zip archive whose
// document body lives in word/document.xml; this builder retains paragraphs
// and tables in order and serializes them on Bytes().

const (
	docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	// A4 portrait with 720 twentieths-of-a-point (0.5 inch) margins.
	docxSectPr = `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="720" w:right="720" w:bottom="720" w:left="720"/></w:sectPr>`
)

type docxAlign string

const (
	alignRight  docxAlign = "right"
	alignCenter docxAlign = "center"
)

// textOpts carries the cosmetic parameters of one paragraph or cell run.
type textOpts struct {
	Bold  bool
	Size  int // half-points; 0 keeps the document default
	Color string
	Align docxAlign
	RTL   bool
}

// docxCell is one table cell: text plus cosmetic parameters.
type docxCell struct {
	Text string
	Fill string // shading hex without '#', e.g. "808080"
	Opts textOpts
}

type docxBuilder struct {
	body strings.Builder
}

func newDocxBuilder() *docxBuilder {
	return &docxBuilder{}
}

// AddParagraph appends a single styled paragraph.
func (d *docxBuilder) AddParagraph(text string, opts textOpts) {
	d.body.WriteString("<w:p>")
	d.writeParagraphProps(opts)
	d.writeRun(text, opts)
	d.body.WriteString("</w:p>")
}

// AddPageBreak appends an explicit forced page break.
func (d *docxBuilder) AddPageBreak() {
	d.body.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
}

// AddTable appends a table. widths are column widths in twentieths of a
// point; rtl mirrors the column order for right-to-left reading.
func (d *docxBuilder) AddTable(rows [][]docxCell, widths []int, rtl bool) {
	d.body.WriteString(`<w:tbl><w:tblPr>`)
	if rtl {
		d.body.WriteString(`<w:bidiVisual/>`)
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	fmt.Fprintf(&d.body, `<w:tblW w:w="%d" w:type="dxa"/>`, total)
	d.body.WriteString(`<w:tblBorders>` +
		`<w:top w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:left w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:bottom w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:right w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:insideH w:val="single" w:sz="4" w:color="000000"/>` +
		`<w:insideV w:val="single" w:sz="4" w:color="000000"/>` +
		`</w:tblBorders></w:tblPr><w:tblGrid>`)
	for _, w := range widths {
		fmt.Fprintf(&d.body, `<w:gridCol w:w="%d"/>`, w)
	}
	d.body.WriteString(`</w:tblGrid>`)

	for _, row := range rows {
		d.body.WriteString("<w:tr>")
		for i, cell := range row {
			width := 0
			if i < len(widths) {
				width = widths[i]
			}
			d.body.WriteString("<w:tc><w:tcPr>")
			fmt.Fprintf(&d.body, `<w:tcW w:w="%d" w:type="dxa"/>`, width)
			if cell.Fill != "" {
				fmt.Fprintf(&d.body, `<w:shd w:val="clear" w:color="auto" w:fill="%s"/>`, cell.Fill)
			}
			d.body.WriteString("</w:tcPr><w:p>")
			d.writeParagraphProps(cell.Opts)
			d.writeRun(cell.Text, cell.Opts)
			d.body.WriteString("</w:p></w:tc>")
		}
		d.body.WriteString("</w:tr>")
	}
	d.body.WriteString("</w:tbl>")
}

func (d *docxBuilder) writeParagraphProps(opts textOpts) {
	if opts.Align == "" && !opts.RTL {
		return
	}
	d.body.WriteString("<w:pPr>")
	if opts.RTL {
		d.body.WriteString("<w:bidi/>")
	}
	if opts.Align != "" {
		fmt.Fprintf(&d.body, `<w:jc w:val="%s"/>`, opts.Align)
	}
	d.body.WriteString("</w:pPr>")
}

// writeRun emits one text run. Styling a zero-length run breaks some
// consumers, so styled empty text is substituted with a non-breaking space.
func (d *docxBuilder) writeRun(text string, opts textOpts) {
	styled := opts.Bold || opts.Size > 0 || opts.Color != "" || opts.RTL
	if text == "" {
		if !styled {
			return
		}
		text = "\u00a0"
	}

	d.body.WriteString("<w:r>")
	if styled {
		d.body.WriteString("<w:rPr>")
		if opts.Bold {
			d.body.WriteString("<w:b/>")
		}
		if opts.Color != "" {
			fmt.Fprintf(&d.body, `<w:color w:val="%s"/>`, opts.Color)
		}
		if opts.Size > 0 {
			fmt.Fprintf(&d.body, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, opts.Size, opts.Size)
		}
		if opts.RTL {
			d.body.WriteString("<w:rtl/>")
		}
		d.body.WriteString("</w:rPr>")
	}
	fmt.Fprintf(&d.body, `<w:t xml:space="preserve">%s</w:t>`, escapeXML(text))
	d.body.WriteString("</w:r>")
}

// Bytes packages the document into a .docx zip archive.
func (d *docxBuilder) Bytes() ([]byte, error) {
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		d.body.String() + docxSectPr + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", document},
	}
	for _, file := range files {
		w, err := zw.Create(file.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", file.name, err)
		}
		if _, err := w.Write([]byte(file.content)); err != nil {
			return nil, fmt.Errorf("write %s: %w", file.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
