package dto

import (
	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	"github.com/SscSPs/price_normalizer_app/internal/utils"
)

// ParseMoneyRequest defines the data needed to parse a single price string.
type ParseMoneyRequest struct {
	Input string `json:"input" binding:"required"`
}

// NormalizeRequest defines the batch of price strings to normalize.
type NormalizeRequest struct {
	Inputs []string `json:"inputs" binding:"required"`
}

// MonetaryAmountResponse defines the data returned for a parsed amount.
type MonetaryAmountResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`
	Display      string `json:"display"` // e.g. "USD 1,234.56"
}

// ParseFailureResponse defines one batch item that could not be parsed.
type ParseFailureResponse struct {
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

// NormalizeResponse defines the batch result: sorted amounts plus failures.
type NormalizeResponse struct {
	Amounts  []MonetaryAmountResponse `json:"amounts"`
	Failures []ParseFailureResponse   `json:"failures"`
}

// ToMonetaryAmountResponse converts a domain.MonetaryAmount to its DTO.
func ToMonetaryAmountResponse(m domain.MonetaryAmount) MonetaryAmountResponse {
	return MonetaryAmountResponse{
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount.String(),
		Display:      utils.FormatMonetaryAmount(m),
	}
}

// ToNormalizeResponse converts a batch result to its DTO.
func ToNormalizeResponse(amounts []domain.MonetaryAmount, failures []domain.ParseFailure) NormalizeResponse {
	resp := NormalizeResponse{
		Amounts:  make([]MonetaryAmountResponse, len(amounts)),
		Failures: make([]ParseFailureResponse, len(failures)),
	}
	for i, amount := range amounts {
		resp.Amounts[i] = ToMonetaryAmountResponse(amount)
	}
	for i, failure := range failures {
		resp.Failures[i] = ParseFailureResponse{Input: failure.Input, Reason: failure.Reason}
	}
	return resp
}
