package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/price_normalizer_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MonetaryAmount is an immutable parsed money value.
type MonetaryAmount struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"` // Always uppercase, member of the convention table
}

// NewMonetaryAmount builds a MonetaryAmount, validating the currency code
// against the given table. The code is stored uppercase.
func NewMonetaryAmount(amount decimal.Decimal, currencyCode string, table *ConventionTable) (MonetaryAmount, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if _, ok := table.Lookup(code); !ok {
		return MonetaryAmount{}, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedCurrency, currencyCode)
	}
	return MonetaryAmount{Amount: amount, CurrencyCode: code}, nil
}

// ParseFailure records one batch item that could not be parsed.
type ParseFailure struct {
	Input  string `json:"input"`
	Reason string `json:"reason"`
}
