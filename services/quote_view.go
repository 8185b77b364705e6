package services

import (
	"fmt"
	"strings"
	"time"
)

// Placeholder substitutes every unset optional field in rendered documents.
const Placeholder = "غير محدد"

// Company is the active company profile as stored.
type Company struct {
	NameAr                 string
	NameEn                 string
	DescriptionAr          string
	DescriptionEn          string
	TaxNumber              string
	Street                 string
	Neighborhood           string
	Country                string
	City                   string
	CommercialRegistration string
	Building               string
	PostalCode             string
	AdditionalNumber       string
	Email                  string
	Phone1                 string
	Phone2                 string
	Phone3                 string
	LogoPath               string
}

// Customer is the customer side of a quote. Every field except Name is
// optional and may be empty.
type Customer struct {
	Name                   string
	TaxNumber              string
	Street                 string
	Neighborhood           string
	Country                string
	City                   string
	CommercialRegistration string
	Building               string
	PostalCode             string
	AdditionalNumber       string
	Phone                  string
}

// QuoteItem is one priced line of a quote, in display order.
type QuoteItem struct {
	Description string
	Quantity    float64
	Unit        string
	UnitPrice   float64
	TotalPrice  float64
}

// Quote is a stored quote with its already-computed totals.
type Quote struct {
	ID                 string
	QuoteNumber        string
	Customer           Customer
	ProjectDescription string
	Location           string
	Items              []QuoteItem
	Subtotal           float64
	TaxAmount          float64
	TotalAmount        float64
	Notes              string
	Created            time.Time
}

// ItemView is a fully formatted line item ready for any renderer.
type ItemView struct {
	Serial      string
	Description string
	Quantity    string
	Unit        string
	UnitPrice   string
	Total       string
}

// QuoteView is the renderer-agnostic projection of a quote/company pairing.
// All optional fields are resolved, all numbers are formatted; renderers only
// place text.
type QuoteView struct {
	QuoteNumber string
	Title       string
	Date        string

	CompanyNameAr        string
	CompanyNameEn        string
	CompanyDescriptionAr string
	LogoPath             string

	CustomerName string
	PartyRows    []PartyRow

	ProjectDescription string
	Location           string

	Items []ItemView

	Subtotal string
	Tax      string
	Total    string

	Notes      string
	FooterLine string
}

// BuildQuoteView projects a quote and company profile into a QuoteView.
// It is a pure transform: absent optional fields become the placeholder,
// never an error.
func BuildQuoteView(q Quote, c Company) QuoteView {
	view := QuoteView{
		QuoteNumber:          q.QuoteNumber,
		Title:                "عرض سعر رقم " + q.QuoteNumber,
		Date:                 q.Created.Format("02 January 2006"),
		CompanyNameAr:        c.NameAr,
		CompanyNameEn:        c.NameEn,
		CompanyDescriptionAr: c.DescriptionAr,
		LogoPath:             c.LogoPath,
		CustomerName:         q.Customer.Name,
		PartyRows:            buildPartyRows(c, q.Customer),
		ProjectDescription:   orPlaceholder(q.ProjectDescription),
		Location:             orPlaceholder(q.Location),
		Subtotal:             FormatSAR(q.Subtotal),
		Tax:                  FormatSAR(q.TaxAmount),
		Total:                FormatSAR(q.TotalAmount),
		Notes:                q.Notes,
		FooterLine:           buildFooterLine(c),
	}

	for i, item := range q.Items {
		view.Items = append(view.Items, ItemView{
			Serial:      fmt.Sprintf("%d", i+1),
			Description: item.Description,
			Quantity:    FormatQty(item.Quantity),
			Unit:        item.Unit,
			UnitPrice:   FormatSAR(item.UnitPrice),
			Total:       FormatSAR(item.TotalPrice),
		})
	}

	return view
}

// buildPartyRows pairs the company and customer values for the fixed 11-row
// party info table.
func buildPartyRows(c Company, cu Customer) []PartyRow {
	values := []struct {
		label    string
		company  string
		customer string
	}{
		{"الاسم", c.NameAr, cu.Name},
		{"الرقم الضريبي", c.TaxNumber, cu.TaxNumber},
		{"الشارع", c.Street, cu.Street},
		{"الحي", c.Neighborhood, cu.Neighborhood},
		{"المدينة", c.City, cu.City},
		{"الدولة", c.Country, cu.Country},
		{"السجل التجاري", c.CommercialRegistration, cu.CommercialRegistration},
		{"رقم المبنى", c.Building, cu.Building},
		{"الرمز البريدي", c.PostalCode, cu.PostalCode},
		{"الرقم الإضافي", c.AdditionalNumber, cu.AdditionalNumber},
		{"الهاتف", c.Phone1, cu.Phone},
	}

	rows := make([]PartyRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, PartyRow{
			Label:    v.label,
			Company:  orPlaceholder(v.company),
			Customer: orPlaceholder(v.customer),
		})
	}
	return rows
}

// buildFooterLine joins the company contact summary: email, neighborhood and
// city, then up to three phone numbers.
func buildFooterLine(c Company) string {
	var parts []string
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if loc := strings.TrimSpace(c.Neighborhood + " " + c.City); loc != "" {
		parts = append(parts, loc)
	}
	for _, phone := range []string{c.Phone1, c.Phone2, c.Phone3} {
		if phone != "" {
			parts = append(parts, phone)
		}
	}
	return strings.Join(parts, " | ")
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
