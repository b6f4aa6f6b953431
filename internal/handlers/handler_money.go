package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_ops/internal/apperrors"
	portssvc "github.com/SscSPs/money_ops/internal/core/ports/services"
	"github.com/SscSPs/money_ops/internal/dto"
	"github.com/SscSPs/money_ops/internal/middleware"
	"github.com/gin-gonic/gin"
)

// moneyHandler handles HTTP requests for money operations.
type moneyHandler struct {
	growthDiscountService portssvc.GrowthDiscountSvc
	transferService       portssvc.TransferSvc
}

func newMoneyHandler(gds portssvc.GrowthDiscountSvc, ts portssvc.TransferSvc) *moneyHandler {
	return &moneyHandler{
		growthDiscountService: gds,
		transferService:       ts,
	}
}

// RegisterMoneyRoutes registers the money operation routes under rg.
func RegisterMoneyRoutes(rg *gin.RouterGroup, gds portssvc.GrowthDiscountSvc, ts portssvc.TransferSvc) {
	registerValidations()
	h := newMoneyHandler(gds, ts)

	money := rg.Group("/money")
	{
		money.POST("/growth", h.applyGrowth)
		money.POST("/discount", h.applyDiscount)
		money.POST("/transfer", h.transfer)
	}
}

// applyGrowth godoc
// @Summary Apply percentage growth
// @Description Increases an amount by ratePercent percent without rounding
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.GrowthRequest true "Base amount and rate"
// @Success 200 {object} dto.MoneyResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Router /money/growth [post]
func (h *moneyHandler) applyGrowth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GrowthRequest
	if !bindRequest(c, logger, &req) {
		return
	}

	base, err := req.Base()
	if err != nil {
		respondServiceError(c, logger, "growth", err)
		return
	}

	result, err := h.growthDiscountService.ApplyGrowth(base, *req.RatePercent)
	if err != nil {
		respondServiceError(c, logger, "growth", err)
		return
	}

	logger.Info("Growth applied", slog.String("currency", result.Currency()), slog.String("rate_percent", req.RatePercent.String()))
	c.JSON(http.StatusOK, dto.ToMoneyResponse(result))
}

// applyDiscount godoc
// @Summary Apply percentage discount
// @Description Reduces an amount by discountPercent percent (0 to 100) without rounding
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.DiscountRequest true "Base amount and discount"
// @Success 200 {object} dto.MoneyResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid input"
// @Router /money/discount [post]
func (h *moneyHandler) applyDiscount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DiscountRequest
	if !bindRequest(c, logger, &req) {
		return
	}

	base, err := req.Base()
	if err != nil {
		respondServiceError(c, logger, "discount", err)
		return
	}

	result, err := h.growthDiscountService.ApplyDiscount(base, *req.DiscountPercent)
	if err != nil {
		respondServiceError(c, logger, "discount", err)
		return
	}

	logger.Info("Discount applied", slog.String("currency", result.Currency()), slog.String("discount_percent", req.DiscountPercent.String()))
	c.JSON(http.StatusOK, dto.ToMoneyResponse(result))
}

// transfer godoc
// @Summary Transfer between balances
// @Description Moves an amount from a source balance to a destination balance of the same currency
// @Tags money
// @Accept  json
// @Produce  json
// @Param   request body dto.TransferRequest true "Balances and amount"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} dto.ApiErrorResponse "Invalid input or insufficient funds"
// @Router /money/transfer [post]
func (h *moneyHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if !bindRequest(c, logger, &req) {
		return
	}

	source, err := req.Source.ToMoney()
	if err != nil {
		respondServiceError(c, logger, "transfer", err)
		return
	}
	destination, err := req.Destination.ToMoney()
	if err != nil {
		respondServiceError(c, logger, "transfer", err)
		return
	}

	result, err := h.transferService.Transfer(source, destination, *req.Amount)
	if err != nil {
		respondServiceError(c, logger, "transfer", err)
		return
	}

	logger.Info("Transfer completed", slog.String("currency", source.Currency()))
	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}

// bindRequest decodes and validates the JSON body into req, writing a 400 response on failure.
func bindRequest(c *gin.Context, logger *slog.Logger, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if resp, ok := dto.ToValidationErrorResponse(err); ok {
		logger.Warn("Request validation failed", slog.Int("field_errors", len(resp.Errors)))
		c.JSON(http.StatusBadRequest, resp)
		return false
	}
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ApiErrorResponse{Message: "Invalid request format: " + err.Error()})
	return false
}

// respondServiceError maps a money operation error to an HTTP response.
// Invalid arguments are reported verbatim.
func respondServiceError(c *gin.Context, logger *slog.Logger, operation string, err error) {
	if errors.Is(err, apperrors.ErrInvalidArgument) {
		logger.Warn("Money operation rejected", slog.String("operation", operation), slog.String("reason", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ApiErrorResponse{Message: err.Error()})
		return
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		logger.Error("Money operation failed", slog.String("operation", operation), slog.Int("code", appErr.Code), slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ApiErrorResponse{Message: appErr.Message})
		return
	}
	logger.Error("Money operation failed", slog.String("operation", operation), slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, dto.ApiErrorResponse{Message: "Failed to process money operation"})
}
