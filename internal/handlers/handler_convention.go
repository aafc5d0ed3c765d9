package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/price_normalizer_app/internal/core/domain"
	"github.com/SscSPs/price_normalizer_app/internal/dto"
	"github.com/SscSPs/price_normalizer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conventionHandler handles HTTP requests related to locale conventions.
type conventionHandler struct {
	table *domain.ConventionTable
}

// registerConventionRoutes registers routes related to locale conventions.
func registerConventionRoutes(rg *gin.RouterGroup, table *domain.ConventionTable) {
	h := &conventionHandler{table: table}

	conventions := rg.Group("/conventions")
	{
		conventions.GET("", h.listConventions)
		conventions.GET("/:code", h.getConventionByCode)
	}
}

// listConventions returns all supported locale conventions in declared order.
func (h *conventionHandler) listConventions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListConventionResponse(h.table.Conventions()))
}

// getConventionByCode returns the convention for one currency code.
func (h *conventionHandler) getConventionByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.ConventionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		logger.Warn("Invalid currency code in URI", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported or malformed currency code"})
		return
	}

	conv, ok := h.table.Lookup(uri.Code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToConventionResponse(conv))
}
