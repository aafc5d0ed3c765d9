package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput indicates the raw input was empty or whitespace-only.
var ErrEmptyInput = errors.New("input is empty")

// ErrUnsupportedCurrency indicates a currency code outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrUnparsableAmount indicates that no locale convention could interpret the
// numeric substring.
var ErrUnparsableAmount = errors.New("unparsable amount")

// ErrAmbiguousFormat indicates that two or more locale conventions read the
// input as different numeric values.
var ErrAmbiguousFormat = errors.New("ambiguous number format")

// AmbiguousFormatError carries the conflicting convention labels so callers
// can report which interpretations disagreed.
type AmbiguousFormatError struct {
	Input  string
	Labels []string
}

func (e *AmbiguousFormatError) Error() string {
	return fmt.Sprintf("ambiguous number format %q: %s", e.Input, strings.Join(e.Labels, ", "))
}

// Is lets errors.Is(err, ErrAmbiguousFormat) match this error.
func (e *AmbiguousFormatError) Is(target error) bool {
	return target == ErrAmbiguousFormat
}
