package handlers

import (
	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	table *domain.ConventionTable,
) {
	registerCustomValidators(table)

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, table)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	table *domain.ConventionTable,
) {
	v1 := r.Group("/api/v1")

	registerParseRoutes(v1, services.Parser, services.Normalizer)
	registerConventionRoutes(v1, table)
}

// registerCustomValidators wires table-aware binding validators into gin.
func registerCustomValidators(table *domain.ConventionTable) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// currencycode: the field must name a currency from the convention table.
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		_, found := table.Lookup(fl.Field().String())
		return found
	})
}
