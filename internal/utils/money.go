package utils

import "fmt"

// FormatUSD renders a dollar amount the way booking totals are displayed.
func FormatUSD(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
