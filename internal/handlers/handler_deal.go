package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fxdeals/fx_deals_warehouse/internal/apperrors"
	portssvc "github.com/fxdeals/fx_deals_warehouse/internal/core/ports/services"
	"github.com/fxdeals/fx_deals_warehouse/internal/dto"
	"github.com/fxdeals/fx_deals_warehouse/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultRecentDealsLimit = 10

// dealHandler handles HTTP requests related to FX deals.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(ds portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{
		dealService: ds,
	}
}

// RegisterDealRoutes registers routes related to FX deals.
func RegisterDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := newDealHandler(dealService)

	deals := rg.Group("/deals")
	{
		deals.POST("", h.submitDeal)
		deals.GET("", h.listDeals)
		deals.GET("/:dealUniqueId", h.getDeal)
		deals.GET("/search/currency-pair", h.getDealsByCurrencyPair)
		deals.GET("/search/time-range", h.getDealsByTimeRange)
		deals.GET("/recent", h.getRecentDeals)
		deals.GET("/stats/count", h.getDealCount)
		deals.GET("/exists/:dealUniqueId", h.checkDealExists)
	}
}

// submitDeal godoc
// @Summary Submit a new FX deal
// @Description Validates and persists a deal; duplicate dealUniqueId submissions are rejected
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.SubmitDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Duplicate dealUniqueId"
// @Failure 500 {object} ErrorResponse "Failed to submit deal"
// @Router /deals [post]
func (h *dealHandler) submitDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitDeal", slog.String("error", err.Error()))
		respondValidationError(c, "Invalid request format: "+err.Error())
		return
	}

	logger = logger.With(slog.String("deal_unique_id", req.DealUniqueID))
	logger.Info("Received deal submission request")

	deal, err := h.dealService.SubmitDeal(c.Request.Context(), req)
	if err != nil {
		respondDealError(c, logger, err, "Failed to submit deal")
		return
	}

	logger.Info("Deal submitted successfully", slog.Int64("deal_id", deal.ID))
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// getDeal godoc
// @Summary Get a deal by its unique ID
// @Tags deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve deal"
// @Router /deals/{dealUniqueId} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealUniqueID := c.Param("dealUniqueId")

	logger = logger.With(slog.String("deal_unique_id", dealUniqueID))

	deal, err := h.dealService.GetDealByUniqueID(c.Request.Context(), dealUniqueID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Deal not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: "Deal not found"})
		} else {
			logger.Error("Failed to get deal from service", slog.String("error", err.Error()))
			respondInternalError(c, "Failed to retrieve deal")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// listDeals godoc
// @Summary List all deals
// @Tags deals
// @Produce  json
// @Success 200 {array} dto.DealResponse
// @Failure 500 {object} ErrorResponse "Failed to list deals"
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	deals, err := h.dealService.ListDeals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list deals from service", slog.String("error", err.Error()))
		respondInternalError(c, "Failed to list deals")
		return
	}

	logger.Info("Deals listed successfully", slog.Int("count", len(deals)))
	c.JSON(http.StatusOK, dto.ToListDealResponse(deals))
}

// getDealsByCurrencyPair godoc
// @Summary Find deals by currency pair
// @Description Retrieves deals for an exact currency pair, newest deal timestamp first
// @Tags deals
// @Produce  json
// @Param   fromCurrency query string true "From currency (3 letters)"
// @Param   toCurrency query string true "To currency (3 letters)"
// @Success 200 {array} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Invalid currency code"
// @Failure 500 {object} ErrorResponse "Failed to search deals"
// @Router /deals/search/currency-pair [get]
func (h *dealHandler) getDealsByCurrencyPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCurrency := c.Query("fromCurrency")
	toCurrency := c.Query("toCurrency")

	logger = logger.With(slog.String("from_currency", fromCurrency), slog.String("to_currency", toCurrency))

	deals, err := h.dealService.GetDealsByCurrencyPair(c.Request.Context(), fromCurrency, toCurrency)
	if err != nil {
		respondDealError(c, logger, err, "Failed to search deals by currency pair")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDealResponse(deals))
}

// getDealsByTimeRange godoc
// @Summary Find deals in a time range
// @Description Retrieves deals with timestamps in [startTime, endTime], both bounds inclusive
// @Tags deals
// @Produce  json
// @Param   startTime query string true "Range start (RFC 3339)"
// @Param   endTime query string true "Range end (RFC 3339)"
// @Success 200 {array} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Invalid time range"
// @Failure 500 {object} ErrorResponse "Failed to search deals"
// @Router /deals/search/time-range [get]
func (h *dealHandler) getDealsByTimeRange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	start, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		respondValidationError(c, "startTime must be a valid RFC 3339 timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		respondValidationError(c, "endTime must be a valid RFC 3339 timestamp")
		return
	}

	deals, err := h.dealService.GetDealsByTimeRange(c.Request.Context(), start, end)
	if err != nil {
		respondDealError(c, logger, err, "Failed to search deals by time range")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDealResponse(deals))
}

// getRecentDeals godoc
// @Summary Get the most recent deals
// @Tags deals
// @Produce  json
// @Param   limit query int false "Maximum number of deals" default(10)
// @Success 200 {array} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Invalid limit"
// @Failure 500 {object} ErrorResponse "Failed to retrieve recent deals"
// @Router /deals/recent [get]
func (h *dealHandler) getRecentDeals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultRecentDealsLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		respondValidationError(c, "limit must be an integer")
		return
	}

	deals, err := h.dealService.GetRecentDeals(c.Request.Context(), limit)
	if err != nil {
		respondDealError(c, logger, err, "Failed to retrieve recent deals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListDealResponse(deals))
}

// getDealCount godoc
// @Summary Get the total number of persisted deals
// @Tags deals
// @Produce  json
// @Success 200 {object} dto.DealCountResponse
// @Failure 500 {object} ErrorResponse "Failed to count deals"
// @Router /deals/stats/count [get]
func (h *dealHandler) getDealCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	count, err := h.dealService.CountDeals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to count deals", slog.String("error", err.Error()))
		respondInternalError(c, "Failed to count deals")
		return
	}

	c.JSON(http.StatusOK, dto.DealCountResponse{TotalDeals: count})
}

// checkDealExists godoc
// @Summary Check whether a deal exists
// @Tags deals
// @Produce  json
// @Param   dealUniqueId path string true "Deal unique ID"
// @Success 200 {object} dto.DealExistsResponse
// @Failure 500 {object} ErrorResponse "Failed to check deal existence"
// @Router /deals/exists/{dealUniqueId} [get]
func (h *dealHandler) checkDealExists(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dealUniqueID := c.Param("dealUniqueId")

	exists, err := h.dealService.DealExists(c.Request.Context(), dealUniqueID)
	if err != nil {
		logger.Error("Failed to check deal existence", slog.String("deal_unique_id", dealUniqueID), slog.String("error", err.Error()))
		respondInternalError(c, "Failed to check deal existence")
		return
	}

	c.JSON(http.StatusOK, dto.DealExistsResponse{Exists: exists})
}

// respondDealError translates core errors into the transport contract:
// validation to 400, duplicate to 409, anything else to 500.
func respondDealError(c *gin.Context, logger *slog.Logger, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Request rejected by validation", slog.String("error", err.Error()))
		respondValidationError(c, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate deal submission attempt", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, ErrorResponse{Code: "DUPLICATE_DEAL", Message: err.Error()})
	default:
		logger.Error("Unexpected service failure", slog.String("error", err.Error()))
		respondInternalError(c, fallbackMessage)
	}
}
