package view

import (
	"fmt"
	"strings"
)

// Money renders a plain-number price as a rupee amount. Whole amounts drop
// the decimals, matching how the storefront shows prices.
func Money(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("₹%d", int64(amount))
	}
	return fmt.Sprintf("₹%.2f", amount)
}

// Stars renders a 0-5 rating as filled stars, rounded to the nearest whole.
// Unrated products default to four stars.
func Stars(rating float64) string {
	if rating <= 0 {
		rating = 4
	}
	n := int(rating + 0.5)
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}
