package utils

import (
	"strings"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatInvariant renders a decimal with comma thousands grouping and exactly
// two decimal digits, independent of any locale convention.
// Example: 1234567.8 returns "1,234,567.80"
func FormatInvariant(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// FormatMonetaryAmount renders the display form of an amount,
// e.g. "USD 1,234.56". The two-decimal rendering is applied uniformly,
// including JPY.
func FormatMonetaryAmount(m domain.MonetaryAmount) string {
	return m.CurrencyCode + " " + FormatInvariant(m.Amount)
}
