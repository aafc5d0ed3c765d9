package services

import (
	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(table *domain.ConventionTable) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The normalizer goes through the parser facade, so build the parser first.
	container.Parser = NewParserService(table)
	container.Normalizer = NewNormalizerService(container.Parser)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.ParserSvcFacade     = (*ParserService)(nil)
	_ portssvc.NormalizerSvcFacade = (*NormalizerService)(nil)
)
