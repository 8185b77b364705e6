package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanager/services"
)

// buildQuoteView fetches the quote, its items and the company profile, and
// projects them into the renderer-agnostic view. Store misses surface here,
// before any rendering starts.
func buildQuoteView(app *pocketbase.PocketBase, quoteID string) (services.QuoteView, error) {
	record, err := app.FindRecordById("quotes", quoteID)
	if err != nil {
		return services.QuoteView{}, fmt.Errorf("quote not found: %w", err)
	}

	items, err := loadQuoteItems(app, record.Id)
	if err != nil {
		return services.QuoteView{}, err
	}

	companyRecord, err := loadCompanyRecord(app)
	if err != nil {
		return services.QuoteView{}, err
	}

	quote := services.Quote{
		ID:          record.Id,
		QuoteNumber: record.GetString("quote_number"),
		Customer: services.Customer{
			Name:                   record.GetString("customer_name"),
			TaxNumber:              record.GetString("customer_tax_number"),
			Street:                 record.GetString("customer_street"),
			Neighborhood:           record.GetString("customer_neighborhood"),
			Country:                record.GetString("customer_country"),
			City:                   record.GetString("customer_city"),
			CommercialRegistration: record.GetString("customer_commercial_registration"),
			Building:               record.GetString("customer_building"),
			PostalCode:             record.GetString("customer_postal_code"),
			AdditionalNumber:       record.GetString("customer_additional_number"),
			Phone:                  record.GetString("customer_phone"),
		},
		ProjectDescription: record.GetString("project_description"),
		Location:           record.GetString("location"),
		Subtotal:           record.GetFloat("subtotal"),
		TaxAmount:          record.GetFloat("tax_amount"),
		TotalAmount:        record.GetFloat("total_amount"),
		Notes:              record.GetString("notes"),
		Created:            record.GetDateTime("created").Time(),
	}
	for _, item := range items {
		quote.Items = append(quote.Items, services.QuoteItem{
			Description: item.GetString("description"),
			Quantity:    item.GetFloat("quantity"),
			Unit:        item.GetString("unit"),
			UnitPrice:   item.GetFloat("unit_price"),
			TotalPrice:  item.GetFloat("total_price"),
		})
	}

	company := services.Company{
		NameAr:                 companyRecord.GetString("name_ar"),
		NameEn:                 companyRecord.GetString("name_en"),
		DescriptionAr:          companyRecord.GetString("description_ar"),
		DescriptionEn:          companyRecord.GetString("description_en"),
		TaxNumber:              companyRecord.GetString("tax_number"),
		Street:                 companyRecord.GetString("street"),
		Neighborhood:           companyRecord.GetString("neighborhood"),
		Country:                companyRecord.GetString("country"),
		City:                   companyRecord.GetString("city"),
		CommercialRegistration: companyRecord.GetString("commercial_registration"),
		Building:               companyRecord.GetString("building"),
		PostalCode:             companyRecord.GetString("postal_code"),
		AdditionalNumber:       companyRecord.GetString("additional_number"),
		Email:                  companyRecord.GetString("email"),
		Phone1:                 companyRecord.GetString("phone1"),
		Phone2:                 companyRecord.GetString("phone2"),
		Phone3:                 companyRecord.GetString("phone3"),
		LogoPath:               companyRecord.GetString("logo_path"),
	}

	return services.BuildQuoteView(quote, company), nil
}

// HandleQuoteExport renders a quote with the renderer selected by kind and
// streams the document back as an attachment.
func HandleQuoteExport(app *pocketbase.PocketBase, kind services.ExportKind) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		renderer, ok := services.RendererFor(kind)
		if !ok {
			return e.String(http.StatusBadRequest, "Unknown export kind")
		}

		view, err := buildQuoteView(app, quoteID)
		if err != nil {
			log.Printf("export_%s: %v", kind, err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		docBytes, err := renderer.Render(view)
		if err != nil {
			log.Printf("export_%s: failed to generate: %v", kind, err)
			return e.String(http.StatusInternalServerError, "Failed to generate document")
		}

		filename := services.ExportFilename(kind, view.QuoteNumber)
		e.Response.Header().Set("Content-Type", renderer.ContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(docBytes)
		return nil
	}
}

// HandleQuoteRegisterExport generates the summary PDF listing all quotes.
func HandleQuoteRegisterExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("quotes", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("export_register: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to list quotes")
		}

		companyRecord, err := loadCompanyRecord(app)
		if err != nil {
			log.Printf("export_register: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load company info")
		}

		data := services.RegisterData{
			CompanyName:   companyRecord.GetString("name_en"),
			GeneratedDate: time.Now().Format("02 Jan 2006"),
		}
		for _, record := range records {
			data.Rows = append(data.Rows, services.RegisterRow{
				QuoteNumber:  record.GetString("quote_number"),
				CustomerName: record.GetString("customer_name"),
				Project:      record.GetString("project_description"),
				CreatedDate:  record.GetDateTime("created").Time().Format("02 Jan 2006"),
				TotalAmount:  record.GetFloat("total_amount"),
			})
			data.GrandTotal += record.GetFloat("total_amount")
		}

		pdfBytes, err := services.GenerateRegisterPDF(data)
		if err != nil {
			log.Printf("export_register: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("quote_register_%d.pdf", time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
