package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency memformat nominal untuk tampilan struk, misal 1234.5 -> "$1,234.50".
// Aritmetika total tetap memakai float64 mentah; pembulatan hanya terjadi di sini.
func FormatCurrency(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)

	// Pisahkan bagian desimal
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	negative := strings.HasPrefix(integerPart, "-")
	integerPart = strings.TrimPrefix(integerPart, "-")

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, strings.Join(result, ","), decimalPart)
}
