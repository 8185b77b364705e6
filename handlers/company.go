package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanager/collections"
)

// companyPayload mirrors the company profile JSON surface.
type companyPayload struct {
	NameAr                 string `json:"name_ar"`
	NameEn                 string `json:"name_en"`
	DescriptionAr          string `json:"description_ar"`
	DescriptionEn          string `json:"description_en"`
	TaxNumber              string `json:"tax_number"`
	Street                 string `json:"street"`
	Neighborhood           string `json:"neighborhood"`
	Country                string `json:"country"`
	City                   string `json:"city"`
	CommercialRegistration string `json:"commercial_registration"`
	Building               string `json:"building"`
	PostalCode             string `json:"postal_code"`
	AdditionalNumber       string `json:"additional_number"`
	Email                  string `json:"email"`
	Phone1                 string `json:"phone1"`
	Phone2                 string `json:"phone2"`
	Phone3                 string `json:"phone3"`
	LogoPath               string `json:"logo_path"`
}

// loadCompanyRecord returns the active company profile, creating the default
// one when the store holds none.
func loadCompanyRecord(app *pocketbase.PocketBase) (*core.Record, error) {
	records, err := app.FindRecordsByFilter("company", "id != ''", "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("find company: %w", err)
	}
	if len(records) > 0 {
		return records[0], nil
	}

	if err := collections.Seed(app); err != nil {
		return nil, fmt.Errorf("seed default company: %w", err)
	}
	records, err = app.FindRecordsByFilter("company", "id != ''", "", 1, 0)
	if err != nil || len(records) == 0 {
		return nil, fmt.Errorf("company profile missing after seed: %w", err)
	}
	return records[0], nil
}

func companyResponse(record *core.Record) companyPayload {
	return companyPayload{
		NameAr:                 record.GetString("name_ar"),
		NameEn:                 record.GetString("name_en"),
		DescriptionAr:          record.GetString("description_ar"),
		DescriptionEn:          record.GetString("description_en"),
		TaxNumber:              record.GetString("tax_number"),
		Street:                 record.GetString("street"),
		Neighborhood:           record.GetString("neighborhood"),
		Country:                record.GetString("country"),
		City:                   record.GetString("city"),
		CommercialRegistration: record.GetString("commercial_registration"),
		Building:               record.GetString("building"),
		PostalCode:             record.GetString("postal_code"),
		AdditionalNumber:       record.GetString("additional_number"),
		Email:                  record.GetString("email"),
		Phone1:                 record.GetString("phone1"),
		Phone2:                 record.GetString("phone2"),
		Phone3:                 record.GetString("phone3"),
		LogoPath:               record.GetString("logo_path"),
	}
}

// HandleCompanyGet returns the active company profile, seeding the default
// one on first use.
func HandleCompanyGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := loadCompanyRecord(app)
		if err != nil {
			log.Printf("company_get: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load company info")
		}
		return e.JSON(http.StatusOK, companyResponse(record))
	}
}

// HandleCompanyUpdate replaces the company profile wholesale: the previous
// record is removed and the submitted one becomes the active profile.
func HandleCompanyUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var payload companyPayload
		if err := e.BindBody(&payload); err != nil {
			return e.String(http.StatusBadRequest, "Invalid company payload")
		}
		if payload.NameAr == "" {
			return e.String(http.StatusBadRequest, "Company name is required")
		}

		var saved *core.Record
		err := app.RunInTransaction(func(txApp core.App) error {
			existing, err := txApp.FindRecordsByFilter("company", "id != ''", "", 0, 0)
			if err != nil {
				return fmt.Errorf("find company: %w", err)
			}
			for _, old := range existing {
				if err := txApp.Delete(old); err != nil {
					return fmt.Errorf("delete old company: %w", err)
				}
			}

			col, err := txApp.FindCollectionByNameOrId("company")
			if err != nil {
				return fmt.Errorf("company collection: %w", err)
			}

			record := core.NewRecord(col)
			record.Set("name_ar", payload.NameAr)
			record.Set("name_en", payload.NameEn)
			record.Set("description_ar", payload.DescriptionAr)
			record.Set("description_en", payload.DescriptionEn)
			record.Set("tax_number", payload.TaxNumber)
			record.Set("street", payload.Street)
			record.Set("neighborhood", payload.Neighborhood)
			record.Set("country", payload.Country)
			record.Set("city", payload.City)
			record.Set("commercial_registration", payload.CommercialRegistration)
			record.Set("building", payload.Building)
			record.Set("postal_code", payload.PostalCode)
			record.Set("additional_number", payload.AdditionalNumber)
			record.Set("email", payload.Email)
			record.Set("phone1", payload.Phone1)
			record.Set("phone2", payload.Phone2)
			record.Set("phone3", payload.Phone3)
			record.Set("logo_path", payload.LogoPath)

			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save company: %w", err)
			}
			saved = record
			return nil
		})
		if err != nil {
			log.Printf("company_update: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to update company info")
		}

		return e.JSON(http.StatusOK, companyResponse(saved))
	}
}
