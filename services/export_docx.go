package services

// GenerateDocx renders a quote as a flow document: a retained tree of
// headings, tables and paragraphs in the fixed section order. The item table
// is partitioned into per-page chunks with the header row repeated in each
// and a forced page break between consecutive chunks; every other section is
// a single block.
func GenerateDocx(view QuoteView) ([]byte, error) {
	d := newDocxBuilder()

	addDocxHeader(d, view)
	addDocxPartyTable(d, view)
	addDocxProjectBlock(d, view)
	addDocxItemTables(d, view)
	addDocxTotals(d, view)
	addDocxSignature(d)
	addDocxNotes(d, view)
	addDocxFooter(d, view)

	return d.Bytes()
}

const (
	docxHeaderFill = "808080"
	docxTotalFill  = "D9D9D9"
	docxTotalColor = "1F7A33"
)

func addDocxHeader(d *docxBuilder, view QuoteView) {
	d.AddParagraph(view.CompanyNameAr, textOpts{Bold: true, Size: 32, Align: alignCenter, RTL: true})
	d.AddParagraph(view.CompanyDescriptionAr, textOpts{Size: 20, Align: alignCenter, RTL: true})
	d.AddParagraph(view.CompanyNameEn, textOpts{Size: 18, Align: alignCenter})
	d.AddParagraph(view.Title, textOpts{Bold: true, Size: 28, Align: alignCenter, RTL: true})
	d.AddParagraph("التاريخ: "+view.Date, textOpts{Size: 20, Align: alignCenter, RTL: true})
	d.AddParagraph("", textOpts{})
}

func addDocxPartyTable(d *docxBuilder, view QuoteView) {
	header := textOpts{Bold: true, Size: 24, Align: alignCenter, RTL: true, Color: "FFFFFF"}
	label := textOpts{Size: 20, Align: alignRight, RTL: true}

	rows := [][]docxCell{{
		{Text: PartySellerHeader, Fill: docxHeaderFill, Opts: header},
		{Text: PartyCustomerHeader, Fill: docxHeaderFill, Opts: header},
	}}
	for _, row := range view.PartyRows {
		rows = append(rows, []docxCell{
			{Text: row.Label + ": " + row.Company, Opts: label},
			{Text: row.Label + ": " + row.Customer, Opts: label},
		})
	}

	d.AddTable(rows, []int{5232, 5232}, true)
	d.AddParagraph("", textOpts{})
}

func addDocxProjectBlock(d *docxBuilder, view QuoteView) {
	d.AddParagraph(ProjectDescriptionLabel+": "+view.ProjectDescription,
		textOpts{Size: 20, Align: alignRight, RTL: true})
	d.AddParagraph(LocationLabel+": "+view.Location,
		textOpts{Size: 20, Align: alignRight, RTL: true})
	d.AddParagraph("", textOpts{})
}

// addDocxItemTables emits ceil(N/ItemsPerPage) tables, each headed by the
// column captions, with a forced page break between chunks but never after
// the last one.
func addDocxItemTables(d *docxBuilder, view QuoteView) {
	widths := []int{700, 4164, 1200, 1200, 1600, 1600}
	headerOpts := textOpts{Bold: true, Size: 20, Align: alignCenter, RTL: true, Color: "FFFFFF"}
	cellOpts := textOpts{Size: 18, Align: alignCenter, RTL: true}
	descOpts := textOpts{Size: 18, Align: alignRight, RTL: true}

	headerRow := make([]docxCell, 0, len(ItemTableHeaders))
	for _, caption := range ItemTableHeaders {
		headerRow = append(headerRow, docxCell{Text: caption, Fill: docxHeaderFill, Opts: headerOpts})
	}

	chunks := ChunkItems(view.Items, ItemsPerPage)
	if chunks == nil {
		d.AddTable([][]docxCell{headerRow}, widths, true)
		return
	}

	for i, chunk := range chunks {
		rows := [][]docxCell{headerRow}
		for _, item := range chunk {
			rows = append(rows, []docxCell{
				{Text: item.Serial, Opts: cellOpts},
				{Text: item.Description, Opts: descOpts},
				{Text: item.Quantity, Opts: cellOpts},
				{Text: item.Unit, Opts: cellOpts},
				{Text: item.UnitPrice, Opts: cellOpts},
				{Text: item.Total, Opts: cellOpts},
			})
		}
		d.AddTable(rows, widths, true)

		if i < len(chunks)-1 {
			d.AddPageBreak()
		}
	}
	d.AddParagraph("", textOpts{})
}

func addDocxTotals(d *docxBuilder, view QuoteView) {
	label := textOpts{Size: 20, Align: alignRight, RTL: true}
	value := textOpts{Size: 20, Align: alignCenter, RTL: true}
	grandLabel := textOpts{Bold: true, Size: 24, Align: alignRight, RTL: true, Color: docxTotalColor}
	grandValue := textOpts{Bold: true, Size: 24, Align: alignCenter, RTL: true, Color: docxTotalColor}

	rows := [][]docxCell{
		{{Text: SubtotalLabel, Opts: label}, {Text: view.Subtotal, Opts: value}},
		{{Text: TaxLabel, Opts: label}, {Text: view.Tax, Opts: value}},
		{
			{Text: TotalLabel, Fill: docxTotalFill, Opts: grandLabel},
			{Text: view.Total, Fill: docxTotalFill, Opts: grandValue},
		},
	}
	d.AddTable(rows, []int{5232, 3500}, true)
	d.AddParagraph("", textOpts{})
}

func addDocxSignature(d *docxBuilder) {
	header := textOpts{Bold: true, Size: 20, Align: alignCenter, RTL: true}
	blank := textOpts{Size: 20}

	rows := [][]docxCell{{
		{Text: SignatureLabel, Opts: header},
		{Text: SignatureDateLabel, Opts: header},
	}}
	// Blank rows leave room for physical signing.
	for i := 0; i < 3; i++ {
		rows = append(rows, []docxCell{{Opts: blank}, {Opts: blank}})
	}
	d.AddTable(rows, []int{5232, 5232}, true)
	d.AddParagraph("", textOpts{})
}

func addDocxNotes(d *docxBuilder, view QuoteView) {
	if view.Notes == "" {
		return
	}
	d.AddParagraph(NotesLabel+":", textOpts{Bold: true, Size: 20, Align: alignRight, RTL: true})
	d.AddParagraph(view.Notes, textOpts{Size: 20, Align: alignRight, RTL: true})
	d.AddParagraph("", textOpts{})
}

func addDocxFooter(d *docxBuilder, view QuoteView) {
	d.AddParagraph(view.FooterLine, textOpts{Size: 16, Align: alignCenter})
}
