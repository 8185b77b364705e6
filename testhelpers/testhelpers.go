// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotemanager/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company profile record and returns it.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, nameAr string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("company")
	if err != nil {
		t.Fatalf("failed to find company collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name_ar", nameAr)
	record.Set("name_en", "Test Contracting Co.")
	record.Set("email", "info@example.com")
	record.Set("phone1", "+966 50 000 0000")
	record.Set("city", "جدة")
	record.Set("neighborhood", "حي الاختبار")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record with the given number and customer
// name and returns it.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, number, customerName string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote_number", number)
	record.Set("customer_name", customerName)
	record.Set("customer_country", "السعودية")
	record.Set("project_description", "مظلة موقف سيارات")
	record.Set("location", "جدة")
	record.Set("subtotal", 1000.0)
	record.Set("tax_amount", 150.0)
	record.Set("total_amount", 1150.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteItem creates a line item linked to a quote and returns it.
func CreateTestQuoteItem(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, description string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_items")
	if err != nil {
		t.Fatalf("failed to find quote_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("quantity", 2.0)
	record.Set("unit", "م²")
	record.Set("unit_price", 500.0)
	record.Set("total_price", 1000.0)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote item: %v", err)
	}

	return record
}
