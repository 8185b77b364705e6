package services

// The layout model: the fixed document shape every renderer reproduces.
// Section order is header, party info, project block, item table, totals,
// signature, notes (optional), footer. Only the item table may span pages.

// ItemsPerPage is the per-page item capacity. When a quote carries more
// items, each renderer that has a page concept emits the item header again at
// the top of every continuation chunk.
const ItemsPerPage = 8

// PartyRow is one row of the paired company/customer info table.
type PartyRow struct {
	Label    string
	Company  string
	Customer string
}

// Party info table header, seller right, customer left.
const (
	PartySellerHeader   = "البائع"
	PartyCustomerHeader = "العميل"
)

// Project block labels.
const (
	ProjectDescriptionLabel = "وصف المشروع"
	LocationLabel           = "الموقع"
)

// ItemTableHeaders are the item table column captions in right-to-left visual
// order: serial, description, quantity, unit, unit price, line total.
var ItemTableHeaders = [6]string{"م", "الوصف", "الكمية", "الوحدة", "سعر الوحدة", "السعر الإجمالي"}

// Totals block labels. The grand total row is visually emphasized by every
// renderer.
const (
	SubtotalLabel = "المجموع الفرعي"
	TaxLabel      = "ضريبة القيمة المضافة (15%)"
	TotalLabel    = "المبلغ الإجمالي"
)

// Signature and notes labels.
const (
	SignatureLabel     = "التوقيع والختم"
	SignatureDateLabel = "تاريخ الاعتماد"
	NotesLabel         = "ملاحظات"
)

// ChunkItems partitions items into chunks of at most size elements, keeping
// order. N items produce ceil(N/size) chunks; exactly N == size produces a
// single chunk.
func ChunkItems(items []ItemView, size int) [][]ItemView {
	if size <= 0 || len(items) == 0 {
		if len(items) == 0 {
			return nil
		}
		return [][]ItemView{items}
	}

	var chunks [][]ItemView
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
