package utils

import (
	"strconv"
	"strings"
)

// FormatThousands memformat angka dengan pemisah ribuan gaya id-ID
// Example: 76000 -> "76.000", -1500 -> "-1.500"
func FormatThousands(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	out := strings.Join(groups, ".")
	if negative {
		return "-" + out
	}
	return out
}

// FormatRupiah formats an amount in Rupiah without a space, the way the order message shows it.
// Example: 25000 -> "Rp25.000"
func FormatRupiah(amount int64) string {
	return "Rp" + FormatThousands(amount)
}
