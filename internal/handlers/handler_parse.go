package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/price_normalizer_app/internal/apperrors"
	portssvc "github.com/SscSPs/price_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/price_normalizer_app/internal/dto"
	"github.com/SscSPs/price_normalizer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// parseHandler handles HTTP requests related to price parsing.
type parseHandler struct {
	parserService     portssvc.ParserSvcFacade
	normalizerService portssvc.NormalizerSvcFacade
}

// newParseHandler creates a new parseHandler.
func newParseHandler(ps portssvc.ParserSvcFacade, ns portssvc.NormalizerSvcFacade) *parseHandler {
	return &parseHandler{
		parserService:     ps,
		normalizerService: ns,
	}
}

// registerParseRoutes registers routes related to price parsing.
func registerParseRoutes(rg *gin.RouterGroup, ps portssvc.ParserSvcFacade, ns portssvc.NormalizerSvcFacade) {
	h := newParseHandler(ps, ns)

	rg.POST("/parse", h.parseMoney)
	rg.POST("/normalize", h.normalize)
}

// parseMoney parses a single free-form price string.
func (h *parseHandler) parseMoney(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParseMoney", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := h.parserService.ParseMoney(c.Request.Context(), req.Input)
	if err != nil {
		var ambiguous *apperrors.AmbiguousFormatError
		switch {
		case errors.As(err, &ambiguous):
			logger.Warn("Ambiguous price format", slog.String("input", req.Input))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "formats": ambiguous.Labels})
		case errors.Is(err, apperrors.ErrEmptyInput),
			errors.Is(err, apperrors.ErrUnparsableAmount),
			errors.Is(err, apperrors.ErrUnsupportedCurrency):
			logger.Warn("Failed to parse price string", slog.String("input", req.Input), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to parse price string in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse price string"})
		}
		return
	}

	logger.Info("Price string parsed successfully", slog.String("currency_code", amount.CurrencyCode))
	c.JSON(http.StatusOK, dto.ToMonetaryAmountResponse(amount))
}

// normalize parses a batch of price strings and returns them sorted by
// amount, along with per-item failures. The batch itself never fails.
func (h *parseHandler) normalize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.NormalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Normalize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amounts, failures := h.normalizerService.NormalizeAndSort(c.Request.Context(), req.Inputs)

	logger.Info("Batch normalized",
		slog.Int("parsed", len(amounts)),
		slog.Int("failed", len(failures)),
	)
	c.JSON(http.StatusOK, dto.ToNormalizeResponse(amounts, failures))
}
