package collections_test

import (
	"testing"

	"quotemanager/collections"
	"quotemanager/testhelpers"
)

func TestSeed_CreatesDefaultCompany(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("company", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to list company records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 company record, got %d", len(records))
	}

	record := records[0]
	if record.GetString("name_ar") != collections.DefaultCompany["name_ar"] {
		t.Errorf("seeded name_ar = %q", record.GetString("name_ar"))
	}
	if record.GetString("tax_number") != "311104439400003" {
		t.Errorf("seeded tax_number = %q", record.GetString("tax_number"))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("company", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to list company records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 company record after repeated seed, got %d", len(records))
	}
}

func TestSeed_SkipsWhenProfileExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCompany(t, app, "شركة موجودة")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	records, err := app.FindRecordsByFilter("company", "id != ''", "", 0, 0)
	if err != nil {
		t.Fatalf("failed to list company records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("seed created a second profile: %d records", len(records))
	}
	if records[0].GetString("name_ar") != "شركة موجودة" {
		t.Errorf("existing profile was replaced: %q", records[0].GetString("name_ar"))
	}
}
