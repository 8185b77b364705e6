package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// DefaultCompany holds the company profile created when the store is empty.
// The PUT /api/company endpoint replaces it wholesale.
var DefaultCompany = map[string]any{
	"name_ar":                 "شركة مثلث الأنظمة المميزة للمقاولات",
	"name_en":                 "MUTHALLATH AL-ANZIMAH AL-MUMAYYIZAH CONTRACTING CO.",
	"description_ar":          "تصميم وتصنيع وتوريد وتركيب مظلات الشد الإنشائي والخيام والسواتر",
	"description_en":          "Design, Manufacture, Supply & Installation of Structure Tension Awnings, Tents & Canopies",
	"tax_number":              "311104439400003",
	"street":                  "شارع حائل",
	"neighborhood":            "حي البغدادية الغربية",
	"country":                 "السعودية",
	"city":                    "جدة",
	"commercial_registration": "4030255240",
	"building":                "8376",
	"postal_code":             "22231",
	"additional_number":       "3842",
	"email":                   "info@tsscoksa.com",
	"phone1":                  "+966 50 061 2006",
	"phone2":                  "055 538 9792",
	"phone3":                  "+966 50 336 5527",
}

// Seed creates the default company profile if none exists yet.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("company", "id != ''", "", 1, 0)
	if err != nil {
		return fmt.Errorf("lookup company: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	col, err := app.FindCollectionByNameOrId("company")
	if err != nil {
		return fmt.Errorf("company collection: %w", err)
	}

	record := core.NewRecord(col)
	for field, value := range DefaultCompany {
		record.Set(field, value)
	}
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save default company: %w", err)
	}
	return nil
}
