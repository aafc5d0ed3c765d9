package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/price_normalizer_app/internal/apperrors"
	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	"github.com/SscSPs/price_normalizer_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// invariantLabel names the locale-independent plain dot-decimal reading.
const invariantLabel = "Format: invariant"

// currencyCodePrefix matches a leading run of uppercase letters followed by
// optional whitespace. Length is checked separately so that longer runs
// ("EURO") are not mistaken for a code plus residue.
var currencyCodePrefix = regexp.MustCompile(`^([A-Z]+)\s*`)

// ParserService turns free-form price strings into MonetaryAmounts by trying
// every convention in its table and accepting the input only when exactly one
// distinct numeric reading results.
type ParserService struct {
	table *domain.ConventionTable
}

// NewParserService creates a parser over the given convention table.
func NewParserService(table *domain.ConventionTable) *ParserService {
	return &ParserService{table: table}
}

// parseCandidate is one (convention label, numeric value) reading of an
// input. Candidates live only within a single ParseMoney call.
type parseCandidate struct {
	label        string
	currencyCode string
	value        decimal.Decimal
}

// ParseMoney parses a single raw price string.
func (s *ParserService) ParseMoney(ctx context.Context, raw string) (domain.MonetaryAmount, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.MonetaryAmount{}, apperrors.ErrEmptyInput
	}

	detectedCode, numeric := s.extractCurrency(trimmed)

	candidates := s.parseCandidates(numeric)
	if len(candidates) == 0 {
		return domain.MonetaryAmount{}, fmt.Errorf("%w: %q", apperrors.ErrUnparsableAmount, raw)
	}
	if len(candidates) > 1 {
		labels := make([]string, len(candidates))
		for i, c := range candidates {
			labels[i] = c.label
		}
		sort.Strings(labels)
		middleware.GetLoggerFromCtx(ctx).Warn("Ambiguous price format",
			slog.String("input", raw),
			slog.String("formats", strings.Join(labels, ", ")),
		)
		return domain.MonetaryAmount{}, &apperrors.AmbiguousFormatError{Input: raw, Labels: labels}
	}

	accepted := candidates[0]
	code := detectedCode
	if code == "" {
		// No explicit code or symbol: fall back to the convention whose
		// label won the accepted value.
		code = accepted.currencyCode
	}
	return domain.NewMonetaryAmount(accepted.value, code, s.table)
}

// extractCurrency strips a leading currency code or a known symbol from the
// input, returning the detected code (empty when none) and the residual
// numeric substring.
func (s *ParserService) extractCurrency(input string) (string, string) {
	if m := currencyCodePrefix.FindStringSubmatch(input); m != nil {
		if letters := m[1]; len(letters) >= 2 && len(letters) <= 3 {
			if conv, ok := s.table.Lookup(letters); ok {
				return conv.CurrencyCode, strings.TrimSpace(input[len(m[0]):])
			}
		}
	}
	for _, conv := range s.table.Conventions() {
		if conv.Symbol != "" && strings.Contains(input, conv.Symbol) {
			stripped := strings.TrimSpace(strings.ReplaceAll(input, conv.Symbol, ""))
			return conv.CurrencyCode, stripped
		}
	}
	return "", input
}

// parseCandidates interprets the numeric substring under every convention in
// the table plus the invariant dot-decimal convention, deduplicating by
// numeric value. The first convention in declared table order keeps a value.
func (s *ParserService) parseCandidates(numeric string) []parseCandidate {
	numeric = strings.TrimSpace(numeric)

	var candidates []parseCandidate
	add := func(label, code string, value decimal.Decimal) {
		for _, c := range candidates {
			if c.value.Equal(value) {
				return
			}
		}
		candidates = append(candidates, parseCandidate{label: label, currencyCode: code, value: value})
	}

	conventions := s.table.Conventions()
	for _, conv := range conventions {
		if value, ok := parseWithSeparators(numeric, conv.DecimalSep, conv.GroupSep); ok {
			add(conv.Label(), conv.CurrencyCode, value)
		}
	}
	if value, ok := parseWithSeparators(numeric, '.', 0); ok {
		// The invariant grammar is a subset of the first convention's, so
		// this candidate only survives deduplication on an empty table.
		code := ""
		if len(conventions) > 0 {
			code = conventions[0].CurrencyCode
		}
		add(invariantLabel, code, value)
	}
	return candidates
}

// parseWithSeparators validates the input against one convention's separator
// grammar and returns its numeric value. A zero groupSep means grouping is
// not allowed (the invariant convention).
//
// Grammar: optional sign, integer part with groups of exactly three digits
// between grouping separators (first group one to three digits), at most one
// decimal separator placed after all grouping separators, one or more
// fractional digits.
func parseWithSeparators(input string, decimalSep, groupSep rune) (decimal.Decimal, bool) {
	if input == "" {
		return decimal.Decimal{}, false
	}
	rest := input
	sign := ""
	if rest[0] == '+' || rest[0] == '-' {
		sign = string(rest[0])
		rest = rest[1:]
	}
	if rest == "" {
		return decimal.Decimal{}, false
	}

	intPart := rest
	fracPart := ""
	hasFrac := false
	if idx := strings.IndexRune(rest, decimalSep); idx >= 0 {
		intPart = rest[:idx]
		fracPart = rest[idx+len(string(decimalSep)):]
		hasFrac = true
		if strings.ContainsRune(fracPart, decimalSep) {
			return decimal.Decimal{}, false
		}
		if !isDigits(fracPart) {
			return decimal.Decimal{}, false
		}
	}
	if !validIntegerPart(intPart, groupSep, hasFrac) {
		return decimal.Decimal{}, false
	}

	canonical := intPart
	if groupSep != 0 {
		canonical = strings.ReplaceAll(canonical, string(groupSep), "")
	}
	if canonical == "" {
		canonical = "0"
	}
	if hasFrac {
		canonical += "." + fracPart
	}
	value, err := decimal.NewFromString(sign + canonical)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}

// validIntegerPart checks the integer part against the grouping rules. An
// empty integer part is allowed only when a fraction follows (".56").
func validIntegerPart(intPart string, groupSep rune, allowEmpty bool) bool {
	if intPart == "" {
		return allowEmpty
	}
	if groupSep == 0 || !strings.ContainsRune(intPart, groupSep) {
		return isDigits(intPart)
	}
	groups := strings.Split(intPart, string(groupSep))
	for i, group := range groups {
		if !isDigits(group) {
			return false
		}
		if i == 0 {
			if len(group) > 3 {
				return false
			}
		} else if len(group) != 3 {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
