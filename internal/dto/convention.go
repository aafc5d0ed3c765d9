package dto

import "github.com/SscSPs/price_normalizer_app/internal/core/domain"

// ConventionURI binds the currency code path parameter.
type ConventionURI struct {
	Code string `uri:"code" binding:"required,currencycode"`
}

// ConventionResponse defines the data returned for a locale convention.
type ConventionResponse struct {
	CurrencyCode      string `json:"currencyCode"`
	Symbol            string `json:"symbol"`
	Locale            string `json:"locale"`
	DecimalSeparator  string `json:"decimalSeparator"`
	GroupingSeparator string `json:"groupingSeparator"`
}

// ToConventionResponse converts a domain.LocaleConvention to its DTO.
func ToConventionResponse(conv domain.LocaleConvention) ConventionResponse {
	return ConventionResponse{
		CurrencyCode:      conv.CurrencyCode,
		Symbol:            conv.Symbol,
		Locale:            conv.Locale,
		DecimalSeparator:  string(conv.DecimalSep),
		GroupingSeparator: string(conv.GroupSep),
	}
}

// ToListConventionResponse converts a slice of conventions to DTOs.
func ToListConventionResponse(conventions []domain.LocaleConvention) []ConventionResponse {
	res := make([]ConventionResponse, len(conventions))
	for i, conv := range conventions {
		res[i] = ToConventionResponse(conv)
	}
	return res
}
