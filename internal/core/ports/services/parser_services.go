package services

import (
	"context"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
)

// ParserSvcFacade is the single-item parse surface used by handlers and the
// batch normalizer.
type ParserSvcFacade interface {
	// ParseMoney parses one free-form price string into a MonetaryAmount.
	// Expected failures are returned as apperrors sentinels (empty input,
	// unparsable, ambiguous, unsupported currency).
	ParseMoney(ctx context.Context, raw string) (domain.MonetaryAmount, error)
}

// NormalizerSvcFacade is the batch entry point.
type NormalizerSvcFacade interface {
	// NormalizeAndSort parses every input, collecting per-item failures
	// without aborting, and returns the successes sorted ascending by
	// amount. It never fails as a whole.
	NormalizeAndSort(ctx context.Context, raws []string) ([]domain.MonetaryAmount, []domain.ParseFailure)
}
