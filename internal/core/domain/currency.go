package domain

import "strings"

// LocaleConvention describes how one supported currency's locale writes
// formatted numbers.
type LocaleConvention struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Locale       string `json:"locale"`       // Display locale identifier (e.g., "en-US")
	DecimalSep   rune   `json:"-"`            // e.g., '.'
	GroupSep     rune   `json:"-"`            // e.g., ','
}

// Label identifies this convention in diagnostics, e.g. "Format: en-US ($)".
func (c LocaleConvention) Label() string {
	return "Format: " + c.Locale + " (" + c.Symbol + ")"
}

// ConventionTable is a read-only set of locale conventions keyed by currency
// code. It is built once at startup and never mutated afterwards, so it is
// safe for concurrent readers.
type ConventionTable struct {
	byCode map[string]LocaleConvention
	order  []LocaleConvention
}

// NewConventionTable builds a table from the given conventions. Declared
// order is preserved for enumeration and used as the tie-break whenever two
// conventions agree on a value or share a symbol.
func NewConventionTable(conventions ...LocaleConvention) *ConventionTable {
	t := &ConventionTable{
		byCode: make(map[string]LocaleConvention, len(conventions)),
		order:  make([]LocaleConvention, 0, len(conventions)),
	}
	for _, conv := range conventions {
		conv.CurrencyCode = strings.ToUpper(conv.CurrencyCode)
		if _, exists := t.byCode[conv.CurrencyCode]; exists {
			continue
		}
		t.byCode[conv.CurrencyCode] = conv
		t.order = append(t.order, conv)
	}
	return t
}

// Lookup returns the convention for a currency code (case-insensitive).
func (t *ConventionTable) Lookup(currencyCode string) (LocaleConvention, bool) {
	conv, ok := t.byCode[strings.ToUpper(currencyCode)]
	return conv, ok
}

// Conventions returns all conventions in declared order.
func (t *ConventionTable) Conventions() []LocaleConvention {
	return t.order
}

// SymbolCurrency returns the currency code of the first declared convention
// using the given symbol, e.g. "$" resolves to USD rather than CAD or AUD.
func (t *ConventionTable) SymbolCurrency(symbol string) (string, bool) {
	for _, conv := range t.order {
		if conv.Symbol == symbol {
			return conv.CurrencyCode, true
		}
	}
	return "", false
}

// DefaultConventions returns the fixed supported currency set. USD comes
// first so that it wins symbol and value tie-breaks.
func DefaultConventions() []LocaleConvention {
	return []LocaleConvention{
		{CurrencyCode: "USD", Symbol: "$", Locale: "en-US", DecimalSep: '.', GroupSep: ','},
		{CurrencyCode: "EUR", Symbol: "€", Locale: "de-DE", DecimalSep: ',', GroupSep: '.'},
		{CurrencyCode: "GBP", Symbol: "£", Locale: "en-GB", DecimalSep: '.', GroupSep: ','},
		{CurrencyCode: "JPY", Symbol: "¥", Locale: "ja-JP", DecimalSep: '.', GroupSep: ','},
		{CurrencyCode: "PHP", Symbol: "₱", Locale: "en-PH", DecimalSep: '.', GroupSep: ','},
		{CurrencyCode: "CAD", Symbol: "$", Locale: "en-CA", DecimalSep: '.', GroupSep: ','},
		{CurrencyCode: "AUD", Symbol: "$", Locale: "en-AU", DecimalSep: '.', GroupSep: ','},
	}
}
