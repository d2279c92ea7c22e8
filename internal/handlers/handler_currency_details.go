package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/SscSPs/nbp_rates_app/internal/dto"
	"github.com/SscSPs/nbp_rates_app/internal/middleware"
	"github.com/SscSPs/nbp_rates_app/internal/viewstate"
	"github.com/gin-gonic/gin"
)

// currencyDetailsHandler exposes one details screen per currency code.
type currencyDetailsHandler struct {
	screens *viewstate.CurrencyDetailsScreens
}

func newCurrencyDetailsHandler(screens *viewstate.CurrencyDetailsScreens) *currencyDetailsHandler {
	return &currencyDetailsHandler{screens: screens}
}

// registerCurrencyDetailsRoutes registers routes of the currency details screens.
func registerCurrencyDetailsRoutes(rg *gin.RouterGroup, screens *viewstate.CurrencyDetailsScreens) {
	h := newCurrencyDetailsHandler(screens)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("/:code", h.getCurrencyDetails)
		currencies.DELETE("/:code/error", h.clearCurrencyDetailsError)
	}
}

// getCurrencyDetails godoc
// @Summary Load a currency details screen
// @Description Loads the last `days` rates of a currency and highlights rates deviating more than 10% from the current one
// @Tags currencies
// @Produce  json
// @Param   code  path  string true  "Currency code" MinLength(3) MaxLength(3)
// @Param   table query string false "NBP table (A, B or C)" default(A)
// @Param   days  query int    false "Number of most recent rates" default(30)
// @Success 200 {object} dto.CurrencyDetailsStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid code, table or days"
// @Failure 404 {object} dto.CurrencyDetailsStateResponse "NBP has no rates for the code"
// @Failure 502 {object} dto.CurrencyDetailsStateResponse "NBP request failed, error set and stale data kept"
// @Router /currencies/{code} [get]
func (h *currencyDetailsHandler) getCurrencyDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var uri dto.CurrencyCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.rejectRequest(c, fmt.Errorf("%w: invalid currency code %q: %v", apperrors.ErrValidation, c.Param("code"), err))
		return
	}

	var query dto.CurrencyDetailsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.rejectRequest(c, fmt.Errorf("%w: invalid query parameters: %v", apperrors.ErrValidation, err))
		return
	}

	var table domain.Table
	if query.Table != "" {
		parsed, err := domain.ParseTable(query.Table)
		if err != nil {
			h.rejectRequest(c, fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
			return
		}
		table = parsed
	}

	logger = logger.With(slog.String("code", uri.Code), slog.String("table", table.String()), slog.Int("days", query.Days))
	logger.Info("Received request to load currency details")

	// The screen is shared with other clients, so a disconnect must not cancel its load.
	state, err := h.screens.Load(context.WithoutCancel(c.Request.Context()), uri.Code, table, query.Days)
	if err != nil {
		logger.Warn("Currency details load failed", slog.String("error", err.Error()))
		c.JSON(statusForError(err), dto.ToCurrencyDetailsStateResponse(state))
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyDetailsStateResponse(state))
}

// clearCurrencyDetailsError godoc
// @Summary Dismiss a currency details error
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyDetailsStateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid code"
// @Failure 404 {object} dto.ErrorResponse "Details screen was never loaded"
// @Router /currencies/{code}/error [delete]
func (h *currencyDetailsHandler) clearCurrencyDetailsError(c *gin.Context) {
	var uri dto.CurrencyCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		h.rejectRequest(c, fmt.Errorf("%w: invalid currency code %q: %v", apperrors.ErrValidation, c.Param("code"), err))
		return
	}

	screen, ok := h.screens.Lookup(uri.Code)
	if !ok {
		h.rejectRequest(c, fmt.Errorf("%w: no details screen loaded for %s", apperrors.ErrNotFound, uri.Code))
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyDetailsStateResponse(screen.ClearError()))
}

func (h *currencyDetailsHandler) rejectRequest(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Rejected currency details request", slog.String("error", err.Error()))
	c.JSON(statusForError(err), dto.ErrorResponse{Error: err.Error()})
}
