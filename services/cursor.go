package services

// layoutCursor tracks the vertical drawing position on a fixed-size page.
// It owns only the overflow arithmetic; drawing stays in the renderer so the
// page-break logic is testable without a PDF backend.
//
// Coordinates follow the renderer's convention: y grows downward from the top
// edge, content starts at the top margin and must stay above
// pageHeight - bottom margin.
type layoutCursor struct {
	pageHeight float64
	top        float64
	bottom     float64

	y    float64
	page int
}

func newLayoutCursor(pageHeight, top, bottom float64) *layoutCursor {
	return &layoutCursor{
		pageHeight: pageHeight,
		top:        top,
		bottom:     bottom,
		y:          top,
		page:       1,
	}
}

// Y returns the current vertical position.
func (c *layoutCursor) Y() float64 { return c.y }

// Page returns the 1-based page index.
func (c *layoutCursor) Page() int { return c.page }

// Advance moves the cursor down by dy.
func (c *layoutCursor) Advance(dy float64) { c.y += dy }

// WouldOverflow reports whether drawing dy more, while keeping reserve free
// below it, would cross the bottom margin.
func (c *layoutCursor) WouldOverflow(dy, reserve float64) bool {
	return c.y+dy > c.pageHeight-c.bottom-reserve
}

// StartNewPage resets the cursor to the top of a fresh page, offset by gap.
func (c *layoutCursor) StartNewPage(gap float64) {
	c.page++
	c.y = c.top + gap
}
