package services

import (
	"fmt"
	"math"
	"strings"
)

// Currency is the display suffix appended to every monetary amount.
const Currency = "ريال"

// FormatSAR formats an amount with thousands separators, exactly two decimal
// places and the riyal suffix, e.g. 35000 -> "35,000.00 ريال".
func FormatSAR(amount float64) string {
	return FormatAmount(amount) + " " + Currency
}

// FormatAmount formats an amount with thousands separators and two decimal
// places but without the currency suffix.
func FormatAmount(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// FormatQty returns a quantity without trailing zeros. Whole numbers are
// rendered without decimals, fractional values with up to two decimal places.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	// Rounding can leave a bare trailing dot ("2.995" -> "3."), so trim it too.
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", qty), "0"), ".")
}
