package services

import (
	"strconv"
	"testing"
)

func TestGenerateRegisterPDF_Basic(t *testing.T) {
	data := RegisterData{
		CompanyName:   "Test Contracting Co.",
		GeneratedDate: "14 Jun 2025",
		Rows: []RegisterRow{
			{QuoteNumber: "1", CustomerName: "Customer A", Project: "Car park shade", CreatedDate: "10 Jun 2025", TotalAmount: 1150},
			{QuoteNumber: "2", CustomerName: "Customer B", Project: "Tension canopy", CreatedDate: "12 Jun 2025", TotalAmount: 34500},
		},
		GrandTotal: 35650,
	}

	result, err := GenerateRegisterPDF(data)
	if err != nil {
		t.Fatalf("GenerateRegisterPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRegisterPDF() returned empty bytes")
	}
	if string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateRegisterPDF_EmptyRegister(t *testing.T) {
	data := RegisterData{
		CompanyName:   "Test Contracting Co.",
		GeneratedDate: "14 Jun 2025",
	}

	result, err := GenerateRegisterPDF(data)
	if err != nil {
		t.Fatalf("GenerateRegisterPDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateRegisterPDF() returned empty bytes")
	}
}

func TestGenerateRegisterPDF_ManyRows(t *testing.T) {
	data := RegisterData{CompanyName: "Test", GeneratedDate: "14 Jun 2025"}
	for i := 0; i < 60; i++ {
		data.Rows = append(data.Rows, RegisterRow{
			QuoteNumber:  strconv.Itoa(i + 1),
			CustomerName: "Customer",
			Project:      "Project",
			CreatedDate:  "01 Jan 2025",
			TotalAmount:  100,
		})
		data.GrandTotal += 100
	}

	result, err := GenerateRegisterPDF(data)
	if err != nil {
		t.Fatalf("GenerateRegisterPDF() error = %v", err)
	}
	if pdfPageCount(result) < 2 {
		t.Errorf("60 rows rendered %d pages, want at least 2", pdfPageCount(result))
	}
}
