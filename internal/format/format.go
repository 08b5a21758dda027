// Package format holds the leaf number-formatting helpers shared by
// internal/cli and internal/calc, so that cli can render calc results
// without the two packages importing each other.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats a monetary value to whole units with a symbol
// and comma grouping, e.g. 43391.08 -> "₹43,391". Calculator outputs are
// conventionally shown without paise/cents.
func Currency(symbol string, v float64) string {
	d := decimal.NewFromFloat(v).Round(0)
	s := d.StringFixed(0)
	if strings.HasPrefix(s, "-") {
		return "-" + symbol + GroupDigits(s[1:])
	}
	return symbol + GroupDigits(s)
}

// Percent formats a whole-number percent value, e.g. 8.5 -> "8.5%".
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// GroupDigits inserts thousands separators into a digit string that may
// carry a leading minus sign.
func GroupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) > 3 {
		var b strings.Builder
		rem := len(s) % 3
		if rem > 0 {
			b.WriteString(s[:rem])
		}
		for i := rem; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}
	if neg {
		return "-" + s
	}
	return s
}
