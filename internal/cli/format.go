// Package cli provides formatting and rendering utilities for terminal
// output of calculator results.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"finsight/internal/format"
)

// FormatCurrency formats a monetary value to whole units with a symbol
// and comma grouping, e.g. 43391.08 -> "₹43,391". Calculator outputs are
// conventionally shown without paise/cents.
func FormatCurrency(symbol string, v float64) string {
	return format.Currency(symbol, v)
}

// FormatMoney formats a monetary value with two decimal places,
// e.g. 9.9 -> "₹9.90". Used for ledger amounts where cents matter.
func FormatMoney(symbol string, v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = groupDigits(s[:i]) + s[i:]
	} else {
		s = groupDigits(s)
	}
	if neg {
		return "-" + symbol + s
	}
	return symbol + s
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupDigits(fmt.Sprintf("%d", n))
}

// groupDigits inserts thousands separators into a digit string that may
// carry a leading minus sign.
func groupDigits(s string) string {
	return format.GroupDigits(s)
}

// FormatCompact shortens large values, e.g. 1161695 -> "1.2M".
func FormatCompact(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatPercent formats a whole-number percent value, e.g. 8.5 -> "8.5%".
func FormatPercent(pct float64) string {
	return format.Percent(pct)
}

// FormatMonths renders a month count as "Ny Mm" for readability.
func FormatMonths(months int) string {
	if months < 12 {
		return fmt.Sprintf("%dmo", months)
	}
	y := months / 12
	m := months % 12
	if m == 0 {
		return fmt.Sprintf("%dy", y)
	}
	return fmt.Sprintf("%dy %dmo", y, m)
}
