package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	"github.com/SscSPs/price_normalizer_app/internal/core/services"
	"github.com/SscSPs/price_normalizer_app/internal/utils"
)

// pna_cli reads price strings from stdin, one per line, until a blank line
// or EOF, then prints the normalized amounts sorted ascending. Failures go
// to stderr. All parsing logic lives in the services package.
func main() {
	// Keep service warnings out of the result stream
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input: %v\n", err)
		os.Exit(1)
	}

	table := domain.NewConventionTable(domain.DefaultConventions()...)
	normalizer := services.NewNormalizerService(services.NewParserService(table))

	amounts, failures := normalizer.NormalizeAndSort(context.Background(), inputs)
	for _, amount := range amounts {
		fmt.Println(utils.FormatMonetaryAmount(amount))
	}
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "%s: %s\n", failure.Input, failure.Reason)
	}
}
