package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary amount with the fixed currency symbol,
// thousands separators, and exactly two decimal places. Rounding is half
// away from zero (decimal.Round semantics). This is the only place in the
// module that knows the currency; the reducers stay currency-agnostic.
func FormatMoney(symbol string, amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupThousands(intPart)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(grouped)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
