package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// RegisterRow is one quote in the register export.
type RegisterRow struct {
	QuoteNumber  string
	CustomerName string
	Project      string
	CreatedDate  string
	TotalAmount  float64
}

// RegisterData holds everything the quotes register PDF needs.
type RegisterData struct {
	CompanyName   string
	GeneratedDate string
	Rows          []RegisterRow
	GrandTotal    float64
}

// GenerateRegisterPDF creates a summary PDF listing every quote, newest
// first, with a grand total line. It returns the raw PDF bytes or an error.
func GenerateRegisterPDF(data RegisterData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addRegisterHeader(m, data)
	addRegisterTableHeader(m)
	for i, r := range data.Rows {
		addRegisterRow(m, r, i)
	}
	addRegisterSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate register PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addRegisterHeader(m core.Maroto, data RegisterData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Quote Register", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.CompanyName, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Generated: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addRegisterTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(text.New("Quote #", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Customer", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Project", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Date", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

func addRegisterRow(m core.Maroto, r RegisterRow, index int) {
	bodyText := props.Text{Size: 8, Align: align.Center}
	bodyTextLeft := props.Text{Size: 8, Align: align.Left}
	bodyTextRight := props.Text{Size: 8, Align: align.Right}

	var cellStyle *props.Cell
	if index%2 == 1 {
		cellStyle = &props.Cell{BackgroundColor: &props.Color{Red: 248, Green: 249, Blue: 250}}
	}

	colNumber := col.New(2).Add(text.New(r.QuoteNumber, bodyText))
	colCustomer := col.New(3).Add(text.New(r.CustomerName, bodyTextLeft))
	colProject := col.New(3).Add(text.New(r.Project, bodyTextLeft))
	colDate := col.New(2).Add(text.New(r.CreatedDate, bodyText))
	colTotal := col.New(2).Add(text.New(FormatAmount(r.TotalAmount), bodyTextRight))

	if cellStyle != nil {
		colNumber = colNumber.WithStyle(cellStyle)
		colCustomer = colCustomer.WithStyle(cellStyle)
		colProject = colProject.WithStyle(cellStyle)
		colDate = colDate.WithStyle(cellStyle)
		colTotal = colTotal.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(colNumber, colCustomer, colProject, colDate, colTotal),
	)
}

func addRegisterSummary(m core.Maroto, data RegisterData) {
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(10).Add(
				text.New(fmt.Sprintf("Total (%d quotes)", len(data.Rows)), labelStyle),
			).WithStyle(summaryCell),
			col.New(2).Add(
				text.New(FormatAmount(data.GrandTotal), labelStyle),
			).WithStyle(summaryCell),
		),
	)
}
