package services

import (
	"strconv"
	"testing"

	"quotemanager/testhelpers"
)

func TestNextQuoteNumber_StartsAtOne(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	number, err := NextQuoteNumber(app)
	if err != nil {
		t.Fatalf("NextQuoteNumber() error = %v", err)
	}
	if number != "1" {
		t.Errorf("first number = %q, want \"1\"", number)
	}
}

func TestNextQuoteNumber_Sequential(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for i := 1; i <= 5; i++ {
		number, err := NextQuoteNumber(app)
		if err != nil {
			t.Fatalf("NextQuoteNumber() call %d error = %v", i, err)
		}
		want := strconv.Itoa(i)
		if number != want {
			t.Errorf("call %d returned %q, want %q", i, number, want)
		}
	}
}

func TestNextQuoteNumber_SurvivesDeletedQuotes(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	first, err := NextQuoteNumber(app)
	if err != nil {
		t.Fatalf("NextQuoteNumber() error = %v", err)
	}
	quote := testhelpers.CreateTestQuote(t, app, first, "عميل")
	if err := app.Delete(quote); err != nil {
		t.Fatalf("failed to delete quote: %v", err)
	}

	// Deleting a quote never frees its number.
	second, err := NextQuoteNumber(app)
	if err != nil {
		t.Fatalf("NextQuoteNumber() error = %v", err)
	}
	if second != "2" {
		t.Errorf("number after delete = %q, want \"2\"", second)
	}
}
