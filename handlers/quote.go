package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanager/services"
)

// defaultCustomerCountry is applied when a customer is created without one.
const defaultCustomerCountry = "السعودية"

type customerPayload struct {
	Name                   string `json:"name"`
	TaxNumber              string `json:"tax_number"`
	Street                 string `json:"street"`
	Neighborhood           string `json:"neighborhood"`
	Country                string `json:"country"`
	City                   string `json:"city"`
	CommercialRegistration string `json:"commercial_registration"`
	Building               string `json:"building"`
	PostalCode             string `json:"postal_code"`
	AdditionalNumber       string `json:"additional_number"`
	Phone                  string `json:"phone"`
}

type itemPayload struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type quoteCreatePayload struct {
	Customer           customerPayload `json:"customer"`
	ProjectDescription string          `json:"project_description"`
	Location           string          `json:"location"`
	Items              []itemPayload   `json:"items"`
	Subtotal           float64         `json:"subtotal"`
	TaxAmount          float64         `json:"tax_amount"`
	TotalAmount        float64         `json:"total_amount"`
	Notes              string          `json:"notes"`
}

// quoteUpdatePayload uses pointers so absent fields are left untouched.
// The quote number and creation timestamp are never updatable.
type quoteUpdatePayload struct {
	Customer           *customerPayload `json:"customer"`
	ProjectDescription *string          `json:"project_description"`
	Location           *string          `json:"location"`
	Items              *[]itemPayload   `json:"items"`
	Subtotal           *float64         `json:"subtotal"`
	TaxAmount          *float64         `json:"tax_amount"`
	TotalAmount        *float64         `json:"total_amount"`
	Notes              *string          `json:"notes"`
}

type quoteResponse struct {
	ID                 string          `json:"id"`
	QuoteNumber        string          `json:"quote_number"`
	Customer           customerPayload `json:"customer"`
	ProjectDescription string          `json:"project_description"`
	Location           string          `json:"location"`
	Items              []itemPayload   `json:"items"`
	Subtotal           float64         `json:"subtotal"`
	TaxAmount          float64         `json:"tax_amount"`
	TotalAmount        float64         `json:"total_amount"`
	Notes              string          `json:"notes"`
	CreatedDate        string          `json:"created_date"`
	UpdatedDate        string          `json:"updated_date"`
}

// loadQuoteItems fetches a quote's line items in display order.
func loadQuoteItems(app core.App, quoteID string) ([]*core.Record, error) {
	items, err := app.FindRecordsByFilter(
		"quote_items",
		"quote = {:quoteId}",
		"sort_order",
		0,
		0,
		map[string]any{"quoteId": quoteID},
	)
	if err != nil {
		return nil, fmt.Errorf("find quote items: %w", err)
	}
	return items, nil
}

func buildQuoteResponse(record *core.Record, items []*core.Record) quoteResponse {
	resp := quoteResponse{
		ID:          record.Id,
		QuoteNumber: record.GetString("quote_number"),
		Customer: customerPayload{
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
		Items:              []itemPayload{},
		Subtotal:           record.GetFloat("subtotal"),
		TaxAmount:          record.GetFloat("tax_amount"),
		TotalAmount:        record.GetFloat("total_amount"),
		Notes:              record.GetString("notes"),
	}

	if dt := record.GetDateTime("created"); !dt.IsZero() {
		resp.CreatedDate = dt.Time().Format(time.RFC3339)
	}
	if dt := record.GetDateTime("updated"); !dt.IsZero() {
		resp.UpdatedDate = dt.Time().Format(time.RFC3339)
	}

	for _, item := range items {
		resp.Items = append(resp.Items, itemPayload{
			Description: item.GetString("description"),
			Quantity:    item.GetFloat("quantity"),
			Unit:        item.GetString("unit"),
			UnitPrice:   item.GetFloat("unit_price"),
			TotalPrice:  item.GetFloat("total_price"),
		})
	}
	return resp
}

func setCustomerFields(record *core.Record, customer customerPayload) {
	if customer.Country == "" {
		customer.Country = defaultCustomerCountry
	}
	record.Set("customer_name", customer.Name)
	record.Set("customer_tax_number", customer.TaxNumber)
	record.Set("customer_street", customer.Street)
	record.Set("customer_neighborhood", customer.Neighborhood)
	record.Set("customer_country", customer.Country)
	record.Set("customer_city", customer.City)
	record.Set("customer_commercial_registration", customer.CommercialRegistration)
	record.Set("customer_building", customer.Building)
	record.Set("customer_postal_code", customer.PostalCode)
	record.Set("customer_additional_number", customer.AdditionalNumber)
	record.Set("customer_phone", customer.Phone)
}

func saveQuoteItems(app core.App, quoteID string, items []itemPayload) error {
	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		return fmt.Errorf("quote_items collection: %w", err)
	}
	for i, item := range items {
		record := core.NewRecord(col)
		record.Set("quote", quoteID)
		record.Set("sort_order", i+1)
		record.Set("description", item.Description)
		record.Set("quantity", item.Quantity)
		record.Set("unit", item.Unit)
		record.Set("unit_price", item.UnitPrice)
		record.Set("total_price", item.TotalPrice)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("save quote item %d: %w", i+1, err)
		}
	}
	return nil
}

// HandleQuoteCreate creates a quote, assigning the next sequential number
// and both timestamps. The number and creation time are immutable afterwards.
func HandleQuoteCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload quoteCreatePayload
		if err := e.BindBody(&payload); err != nil {
			return e.String(http.StatusBadRequest, "Invalid quote payload")
		}
		if payload.Customer.Name == "" {
			return e.String(http.StatusBadRequest, "Customer name is required")
		}

		var saved *core.Record
		err := app.RunInTransaction(func(txApp core.App) error {
			number, err := services.NextQuoteNumber(txApp)
			if err != nil {
				return fmt.Errorf("next quote number: %w", err)
			}

			col, err := txApp.FindCollectionByNameOrId("quotes")
			if err != nil {
				return fmt.Errorf("quotes collection: %w", err)
			}

			record := core.NewRecord(col)
			record.Set("quote_number", number)
			setCustomerFields(record, payload.Customer)
			record.Set("project_description", payload.ProjectDescription)
			record.Set("location", payload.Location)
			record.Set("subtotal", payload.Subtotal)
			record.Set("tax_amount", payload.TaxAmount)
			record.Set("total_amount", payload.TotalAmount)
			record.Set("notes", payload.Notes)

			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save quote: %w", err)
			}
			if err := saveQuoteItems(txApp, record.Id, payload.Items); err != nil {
				return err
			}
			saved = record
			return nil
		})
		if err != nil {
			log.Printf("quote_create: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to create quote")
		}

		items, err := loadQuoteItems(app, saved.Id)
		if err != nil {
			log.Printf("quote_create: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote items")
		}
		return e.JSON(http.StatusOK, buildQuoteResponse(saved, items))
	}
}

// HandleQuoteList returns quotes newest first, with skip/limit paging.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		skip := queryInt(e, "skip", 0)
		limit := queryInt(e, "limit", 100)

		records, err := app.FindRecordsByFilter("quotes", "id != ''", "-created", limit, skip)
		if err != nil {
			log.Printf("quote_list: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to list quotes")
		}

		responses := make([]quoteResponse, 0, len(records))
		for _, record := range records {
			items, err := loadQuoteItems(app, record.Id)
			if err != nil {
				log.Printf("quote_list: %v", err)
				return e.String(http.StatusInternalServerError, "Failed to load quote items")
			}
			responses = append(responses, buildQuoteResponse(record, items))
		}
		return e.JSON(http.StatusOK, responses)
	}
}

// HandleQuoteGet returns a single quote by id.
func HandleQuoteGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}
		items, err := loadQuoteItems(app, record.Id)
		if err != nil {
			log.Printf("quote_get: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote items")
		}
		return e.JSON(http.StatusOK, buildQuoteResponse(record, items))
	}
}

// HandleQuoteUpdate applies a partial update. Submitted items replace the
// stored list wholesale; the quote number and creation timestamp stay as
// they were assigned.
func HandleQuoteUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}

		var payload quoteUpdatePayload
		if err := e.BindBody(&payload); err != nil {
			return e.String(http.StatusBadRequest, "Invalid quote payload")
		}
		if payload.Customer != nil && payload.Customer.Name == "" {
			return e.String(http.StatusBadRequest, "Customer name is required")
		}

		err = app.RunInTransaction(func(txApp core.App) error {
			if payload.Customer != nil {
				setCustomerFields(record, *payload.Customer)
			}
			if payload.ProjectDescription != nil {
				record.Set("project_description", *payload.ProjectDescription)
			}
			if payload.Location != nil {
				record.Set("location", *payload.Location)
			}
			if payload.Subtotal != nil {
				record.Set("subtotal", *payload.Subtotal)
			}
			if payload.TaxAmount != nil {
				record.Set("tax_amount", *payload.TaxAmount)
			}
			if payload.TotalAmount != nil {
				record.Set("total_amount", *payload.TotalAmount)
			}
			if payload.Notes != nil {
				record.Set("notes", *payload.Notes)
			}
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save quote: %w", err)
			}

			if payload.Items != nil {
				existing, err := loadQuoteItems(txApp, record.Id)
				if err != nil {
					return err
				}
				for _, item := range existing {
					if err := txApp.Delete(item); err != nil {
						return fmt.Errorf("delete quote item: %w", err)
					}
				}
				if err := saveQuoteItems(txApp, record.Id, *payload.Items); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			log.Printf("quote_update: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to update quote")
		}

		items, err := loadQuoteItems(app, record.Id)
		if err != nil {
			log.Printf("quote_update: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load quote items")
		}
		return e.JSON(http.StatusOK, buildQuoteResponse(record, items))
	}
}

// HandleQuoteDelete removes a quote permanently; its items cascade.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotes", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "Quote not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("quote_delete: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to delete quote")
		}
		return e.JSON(http.StatusOK, map[string]string{"message": "Quote deleted successfully"})
	}
}

func queryInt(e *core.RequestEvent, name string, fallback int) int {
	raw := e.Request.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
