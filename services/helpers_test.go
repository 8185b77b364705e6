package services

import (
	"bytes"
	"time"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// testCompany returns a fully populated company profile for view tests.
func testCompany() Company {
	return Company{
		NameAr:                 "شركة مثلث الأنظمة المميزة للمقاولات",
		NameEn:                 "MUTHALLATH AL-ANZIMAH AL-MUMAYYIZAH CONTRACTING CO.",
		DescriptionAr:          "تصميم وتصنيع وتوريد وتركيب مظلات الشد الإنشائي",
		TaxNumber:              "311104439400003",
		Street:                 "شارع حائل",
		Neighborhood:           "حي البغدادية الغربية",
		Country:                "السعودية",
		City:                   "جدة",
		CommercialRegistration: "4030255240",
		Building:               "8376",
		PostalCode:             "22231",
		AdditionalNumber:       "3842",
		Email:                  "info@tsscoksa.com",
		Phone1:                 "+966 50 061 2006",
		Phone2:                 "055 538 9792",
		Phone3:                 "+966 50 336 5527",
	}
}

// testQuote returns a quote with n line items priced at 500 each.
func testQuote(n int) Quote {
	q := Quote{
		QuoteNumber: "7",
		Customer: Customer{
			Name:    "مؤسسة البناء الحديث",
			City:    "الرياض",
			Country: "السعودية",
			Phone:   "055 111 2222",
		},
		ProjectDescription: "تصميم وتركيب مظلة موقف سيارات",
		Location:           "جدة",
		Notes:              "التسليم خلال ثلاثين يوماً",
		Created:            time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC),
	}
	for i := 0; i < n; i++ {
		q.Items = append(q.Items, QuoteItem{
			Description: "بند رقم",
			Quantity:    2,
			Unit:        "م²",
			UnitPrice:   250,
			TotalPrice:  500,
		})
		q.Subtotal += 500
	}
	q.TaxAmount = q.Subtotal * 0.15
	q.TotalAmount = q.Subtotal + q.TaxAmount
	return q
}

// testView builds the projected view for a quote with n items.
func testView(n int) QuoteView {
	return BuildQuoteView(testQuote(n), testCompany())
}
