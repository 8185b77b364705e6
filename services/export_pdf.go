package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Page geometry in millimeters (A4 portrait).
const (
	pdfPageWidth    = 210.0
	pdfPageHeight   = 297.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 15.0

	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfRightEdge    = pdfPageWidth - pdfMarginRight

	pdfHeaderHeight = 34.0
	pdfPartyRowH    = 6.0
	pdfItemHeaderH  = 8.0
	pdfItemRowH     = 6.5
	pdfTotalsRowH   = 7.0
	pdfInterPageGap = 10.0
	// Room kept free below the item table for totals, signature and footer.
	pdfTrailingReserve = 75.0
)

// Lossy bounds, kept from the on-screen layout: item descriptions are cut
// with an ellipsis, the project description wraps into at most three lines.
const (
	pdfMaxDescRunes    = 60
	pdfWrapWidthChars  = 90
	pdfMaxProjectLines = 3
)

// Item table column widths in right-to-left visual order:
// serial, description, quantity, unit, unit price, line total.
var pdfItemColWidths = [6]float64{12, 78, 20, 20, 25, 25}

// pdfCanvas owns the drawing primitives and the page cursor for one export.
// Each call to GeneratePDF builds its own canvas, so concurrent exports never
// share state.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
	cur *layoutCursor
	tr  func(string) string
}

// GeneratePDF renders a quote onto fixed A4 pages with absolute positioning.
// The item table is the only section that may spill onto continuation pages;
// the column header is redrawn on each of them.
func GeneratePDF(view QuoteView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	c := &pdfCanvas{
		pdf: pdf,
		cur: newLayoutCursor(pdfPageHeight, pdfMarginTop, pdfMarginBottom),
		// The core fonts only cover cp1252, so Arabic text renders as
		// substitute glyphs.
		// TODO: embed a UTF-8 TTF so Arabic strings render natively.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}

	c.drawHeader(view)
	c.drawPartyTable(view)
	c.drawProjectBlock(view)
	c.drawItemsTable(view)
	c.drawTotals(view)
	c.drawSignature()
	c.drawNotes(view)
	c.drawFooter(view)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// ── primitives ──────────────────────────────────────────────────────────

// textRight draws s with its right edge anchored at x.
func (c *pdfCanvas) textRight(x, y float64, s string) {
	s = c.tr(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(s), y, s)
}

// textCenter draws s centered on x.
func (c *pdfCanvas) textCenter(x, y float64, s string) {
	s = c.tr(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(s)/2, y, s)
}

// cell draws a bordered rectangle anchored at its top-left corner,
// optionally filled with the current fill color.
func (c *pdfCanvas) cell(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "FD"
	}
	c.pdf.Rect(x, y, w, h, style)
}

// newPage emits the current page and resets the cursor below the top margin
// plus the fixed inter-page offset.
func (c *pdfCanvas) newPage() {
	c.pdf.AddPage()
	c.cur.StartNewPage(pdfInterPageGap)
}

// ── sections ────────────────────────────────────────────────────────────

func (c *pdfCanvas) drawHeader(view QuoteView) {
	y := c.cur.Y()

	// Logo slot on the left.
	c.pdf.SetDrawColor(180, 180, 180)
	c.cell(pdfMarginLeft, y, 28, 20, false)
	c.pdf.SetFont("Arial", "", 7)
	c.pdf.SetTextColor(150, 150, 150)
	c.textCenter(pdfMarginLeft+14, y+11, "Logo")

	// Centered company block.
	c.pdf.SetTextColor(0, 0, 0)
	center := pdfPageWidth / 2
	c.pdf.SetFont("Arial", "B", 13)
	c.textCenter(center, y+6, view.CompanyNameAr)
	c.pdf.SetFont("Arial", "", 8)
	c.textCenter(center, y+12, view.CompanyDescriptionAr)
	c.textCenter(center, y+17, view.CompanyNameEn)

	// Right-aligned quote badge.
	c.pdf.SetFont("Arial", "B", 11)
	c.textRight(pdfRightEdge, y+8, view.Title)
	c.pdf.SetFont("Arial", "", 9)
	c.textRight(pdfRightEdge, y+14, view.Date)

	c.pdf.SetDrawColor(0, 0, 0)
	c.cur.Advance(pdfHeaderHeight)
}

func (c *pdfCanvas) drawPartyTable(view QuoteView) {
	half := pdfContentWidth / 2
	leftX := pdfMarginLeft
	rightX := pdfMarginLeft + half

	// Header row: seller on the right cell, customer on the left.
	c.pdf.SetFillColor(51, 51, 51)
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.SetFont("Arial", "B", 10)
	y := c.cur.Y()
	c.cell(leftX, y, half, pdfPartyRowH+1, true)
	c.cell(rightX, y, half, pdfPartyRowH+1, true)
	c.textCenter(rightX+half/2, y+5, PartySellerHeader)
	c.textCenter(leftX+half/2, y+5, PartyCustomerHeader)
	c.cur.Advance(pdfPartyRowH + 1)

	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetFont("Arial", "", 8)
	for _, row := range view.PartyRows {
		y := c.cur.Y()
		c.cell(leftX, y, half, pdfPartyRowH, false)
		c.cell(rightX, y, half, pdfPartyRowH, false)
		c.textRight(rightX+half-2, y+4.2, row.Label+": "+row.Company)
		c.textRight(leftX+half-2, y+4.2, row.Label+": "+row.Customer)
		c.cur.Advance(pdfPartyRowH)
	}
	c.cur.Advance(4)
}

func (c *pdfCanvas) drawProjectBlock(view QuoteView) {
	c.pdf.SetFont("Arial", "B", 9)
	lines := wrapText(ProjectDescriptionLabel+": "+view.ProjectDescription, pdfWrapWidthChars)
	if len(lines) > pdfMaxProjectLines {
		lines = lines[:pdfMaxProjectLines]
	}
	for _, line := range lines {
		c.textRight(pdfRightEdge, c.cur.Y()+4, line)
		c.cur.Advance(5)
	}

	c.textRight(pdfRightEdge, c.cur.Y()+4, LocationLabel+": "+view.Location)
	c.cur.Advance(5)
	c.cur.Advance(4)
}

// drawItemHeader paints the filled column caption row at the cursor.
func (c *pdfCanvas) drawItemHeader() {
	c.pdf.SetFillColor(51, 51, 51)
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.SetFont("Arial", "B", 8)

	y := c.cur.Y()
	x := pdfRightEdge
	for i, w := range pdfItemColWidths {
		x -= w
		c.cell(x, y, w, pdfItemHeaderH, true)
		c.textCenter(x+w/2, y+5.3, ItemTableHeaders[i])
	}
	c.cur.Advance(pdfItemHeaderH)

	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetFont("Arial", "", 8)
}

func (c *pdfCanvas) drawItemsTable(view QuoteView) {
	c.drawItemHeader()

	onPage := 0
	for _, item := range view.Items {
		if onPage == ItemsPerPage || c.cur.WouldOverflow(pdfItemRowH, pdfTrailingReserve) {
			c.newPage()
			c.drawItemHeader()
			onPage = 0
		}

		desc := truncateRunes(item.Description, pdfMaxDescRunes)
		values := [6]string{item.Serial, desc, item.Quantity, item.Unit, item.UnitPrice, item.Total}

		y := c.cur.Y()
		x := pdfRightEdge
		for i, w := range pdfItemColWidths {
			x -= w
			c.cell(x, y, w, pdfItemRowH, false)
			if i == 1 {
				// Description hugs the cell's right edge; the rest centers.
				c.textRight(x+w-2, y+4.4, values[i])
			} else {
				c.textCenter(x+w/2, y+4.4, values[i])
			}
		}
		c.cur.Advance(pdfItemRowH)
		onPage++
	}
	c.cur.Advance(4)
}

func (c *pdfCanvas) drawTotals(view QuoteView) {
	const totalsW, valueW = 90.0, 35.0
	labelW := totalsW - valueW
	x := pdfRightEdge - totalsW

	c.pdf.SetFont("Arial", "", 9)
	rows := []struct {
		label, value string
	}{
		{SubtotalLabel, view.Subtotal},
		{TaxLabel, view.Tax},
	}
	for _, row := range rows {
		y := c.cur.Y()
		c.cell(x+valueW, y, labelW, pdfTotalsRowH, false)
		c.cell(x, y, valueW, pdfTotalsRowH, false)
		c.textRight(x+totalsW-2, y+4.8, row.label)
		c.textCenter(x+valueW/2, y+4.8, row.value)
		c.cur.Advance(pdfTotalsRowH)
	}

	// Grand total: full-width band, larger font, distinct color.
	y := c.cur.Y()
	c.pdf.SetFillColor(217, 217, 217)
	c.cell(x, y, totalsW, pdfTotalsRowH+2, true)
	c.pdf.SetFont("Arial", "B", 11)
	c.pdf.SetTextColor(31, 122, 51)
	c.textRight(x+totalsW-2, y+6, TotalLabel)
	c.textCenter(x+valueW/2, y+6, view.Total)
	c.pdf.SetTextColor(0, 0, 0)
	c.cur.Advance(pdfTotalsRowH + 2)
	c.cur.Advance(6)
}

func (c *pdfCanvas) drawSignature() {
	half := pdfContentWidth / 2
	leftX := pdfMarginLeft
	rightX := pdfMarginLeft + half

	c.pdf.SetFont("Arial", "B", 9)
	y := c.cur.Y()
	c.cell(leftX, y, half, 7, false)
	c.cell(rightX, y, half, 7, false)
	c.textCenter(rightX+half/2, y+4.8, SignatureLabel)
	c.textCenter(leftX+half/2, y+4.8, SignatureDateLabel)
	c.cur.Advance(7)

	// Blank area for physical signing.
	y = c.cur.Y()
	c.cell(leftX, y, half, 22, false)
	c.cell(rightX, y, half, 22, false)
	c.cur.Advance(22)
	c.cur.Advance(5)
}

func (c *pdfCanvas) drawNotes(view QuoteView) {
	if view.Notes == "" {
		return
	}
	c.pdf.SetFont("Arial", "B", 9)
	c.textRight(pdfRightEdge, c.cur.Y()+4, NotesLabel+":")
	c.cur.Advance(5)

	c.pdf.SetFont("Arial", "", 8)
	for _, line := range wrapText(view.Notes, pdfWrapWidthChars) {
		c.textRight(pdfRightEdge, c.cur.Y()+4, line)
		c.cur.Advance(4.5)
	}
	c.cur.Advance(3)
}

func (c *pdfCanvas) drawFooter(view QuoteView) {
	c.pdf.SetFont("Arial", "", 7)
	c.pdf.SetTextColor(120, 120, 120)
	c.textCenter(pdfPageWidth/2, pdfPageHeight-8, view.FooterLine)
	c.pdf.SetTextColor(0, 0, 0)
}

// ── text helpers ────────────────────────────────────────────────────────

// wrapText breaks s into lines of at most width characters, splitting on
// spaces. Unbroken runs longer than width are hard-split so pathological
// input cannot defeat the wrap.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}

	var lines []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		wordLen := len(runes)
		if currentLen > 0 && currentLen+1+wordLen > width {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(string(runes))
		currentLen += wordLen
	}
	flush()

	if lines == nil {
		lines = []string{""}
	}
	return lines
}

// truncateRunes cuts s after max runes, appending an ellipsis when text was
// dropped.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
