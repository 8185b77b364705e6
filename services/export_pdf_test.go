package services

import (
	"strings"
	"testing"
)

// pdfPageCount counts the page objects in a rendered document. Every page
// carries a "/Type /Page" entry; the page tree root adds one "/Type /Pages".
func pdfPageCount(b []byte) int {
	s := string(b)
	return strings.Count(s, "/Type /Page") - strings.Count(s, "/Type /Pages")
}

func TestGeneratePDF_BasicQuote(t *testing.T) {
	result, err := GeneratePDF(testView(2))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_EmptyItems(t *testing.T) {
	result, err := GeneratePDF(testView(0))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if pdfPageCount(result) != 1 {
		t.Errorf("empty quote rendered %d pages, want 1", pdfPageCount(result))
	}
}

func TestGeneratePDF_PageCounts(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		wantPages int
	}{
		{"single item", 1, 1},
		{"exactly full page", ItemsPerPage, 1},
		{"one over", ItemsPerPage + 1, 2},
		{"two full pages", 2 * ItemsPerPage, 2},
		{"three pages", 2*ItemsPerPage + 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := GeneratePDF(testView(tt.items))
			if err != nil {
				t.Fatalf("GeneratePDF() error = %v", err)
			}
			if got := pdfPageCount(result); got != tt.wantPages {
				t.Errorf("%d items rendered %d pages, want %d", tt.items, got, tt.wantPages)
			}
		})
	}
}

func TestGeneratePDF_LongDescriptions(t *testing.T) {
	q := testQuote(0)
	q.Items = []QuoteItem{{
		Description: strings.Repeat("وصف طويل جداً ", 30),
		Quantity:    1,
		UnitPrice:   100,
		TotalPrice:  100,
	}}

	result, err := GeneratePDF(BuildQuoteView(q, testCompany()))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if pdfPageCount(result) != 1 {
		t.Errorf("one long item rendered %d pages, want 1", pdfPageCount(result))
	}
}

func TestGeneratePDF_Idempotent(t *testing.T) {
	view := testView(3)

	first, err := GeneratePDF(view)
	if err != nil {
		t.Fatalf("first GeneratePDF() error = %v", err)
	}
	second, err := GeneratePDF(view)
	if err != nil {
		t.Fatalf("second GeneratePDF() error = %v", err)
	}

	// gofpdf embeds a CreationDate; everything after it must match.
	if len(first) != len(second) {
		t.Errorf("repeated export sizes differ: %d vs %d", len(first), len(second))
	}
	if pdfPageCount(first) != pdfPageCount(second) {
		t.Error("repeated export page counts differ")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits on one line", "hello world", 20, []string{"hello world"}},
		{"wraps on space", "alpha beta gamma", 11, []string{"alpha beta", "gamma"}},
		{"hard split overlong word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"zero width passthrough", "anything", 0, []string{"anything"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.input, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText(%q, %d) = %v, want %v", tt.input, tt.width, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"cut with ellipsis", "abcdef", 5, "abcde..."},
		{"arabic counted in runes", "مظلة شد إنشائي", 4, "مظلة..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateRunes(tt.input, tt.max); got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}
