package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/price_normalizer_app/internal/middleware"
)

// NormalizerService applies the single-item parser to a batch of inputs.
type NormalizerService struct {
	parser portssvc.ParserSvcFacade
}

// NewNormalizerService creates a normalizer over the given parser.
func NewNormalizerService(parser portssvc.ParserSvcFacade) *NormalizerService {
	return &NormalizerService{parser: parser}
}

// NormalizeAndSort parses every input in order. Failures become failure
// entries instead of aborting the batch. Successes are returned sorted
// ascending by amount; equal amounts keep their encounter order.
func (s *NormalizerService) NormalizeAndSort(ctx context.Context, raws []string) ([]domain.MonetaryAmount, []domain.ParseFailure) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amounts := make([]domain.MonetaryAmount, 0, len(raws))
	failures := make([]domain.ParseFailure, 0)
	for _, raw := range raws {
		amount, err := s.parser.ParseMoney(ctx, raw)
		if err != nil {
			logger.Warn("Failed to parse batch item",
				slog.String("input", raw),
				slog.String("error", err.Error()),
			)
			failures = append(failures, domain.ParseFailure{Input: raw, Reason: err.Error()})
			continue
		}
		amounts = append(amounts, amount)
	}

	sort.SliceStable(amounts, func(i, j int) bool {
		return amounts[i].Amount.LessThan(amounts[j].Amount)
	})
	return amounts, failures
}
