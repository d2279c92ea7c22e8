package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/nbp_rates_app/internal/dto"
	"github.com/SscSPs/nbp_rates_app/internal/middleware"
	"github.com/SscSPs/nbp_rates_app/internal/viewstate"
	"github.com/gin-gonic/gin"
)

// currencyListHandler exposes the currency list screen.
type currencyListHandler struct {
	screen *viewstate.CurrencyListViewModel
}

func newCurrencyListHandler(screen *viewstate.CurrencyListViewModel) *currencyListHandler {
	return &currencyListHandler{screen: screen}
}

// registerCurrencyListRoutes registers routes of the currency list screen.
func registerCurrencyListRoutes(rg *gin.RouterGroup, screen *viewstate.CurrencyListViewModel) {
	h := newCurrencyListHandler(screen)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.getCurrencyList)
		currencies.POST("/reload", h.reloadCurrencyList)
		currencies.DELETE("/error", h.clearCurrencyListError)
		currencies.GET("/stream", h.streamCurrencyList)
	}
}

// getCurrencyList godoc
// @Summary Get the currency list screen
// @Description Returns the current state of the currency list (tables A and B merged)
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyListStateResponse
// @Router /currencies [get]
func (h *currencyListHandler) getCurrencyList(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyListStateResponse(h.screen.State()))
}

// reloadCurrencyList godoc
// @Summary Reload the currency list
// @Description Fetches tables A and B from NBP and returns the resulting screen state
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyListStateResponse
// @Failure 502 {object} dto.CurrencyListStateResponse "NBP request failed, error set and stale data kept"
// @Router /currencies/reload [post]
func (h *currencyListHandler) reloadCurrencyList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to reload currency list")

	// The screen is shared with other clients, so a disconnect must not cancel its load.
	state, err := h.screen.Load(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		logger.Warn("Currency list reload failed", slog.String("error", err.Error()))
		c.JSON(statusForError(err), dto.ToCurrencyListStateResponse(state))
		return
	}

	logger.Info("Currency list reloaded", slog.Int("count", len(state.Currencies)))
	c.JSON(http.StatusOK, dto.ToCurrencyListStateResponse(state))
}

// clearCurrencyListError godoc
// @Summary Dismiss the currency list error
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.CurrencyListStateResponse
// @Router /currencies/error [delete]
func (h *currencyListHandler) clearCurrencyListError(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyListStateResponse(h.screen.ClearError()))
}

// streamCurrencyList godoc
// @Summary Stream currency list states
// @Description Server-sent events, one "state" event per screen state change, starting with the current one
// @Tags currencies
// @Produce  text/event-stream
// @Success 200 {object} dto.CurrencyListStateResponse
// @Router /currencies/stream [get]
func (h *currencyListHandler) streamCurrencyList(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	states, cancel := h.screen.Subscribe()
	defer cancel()

	logger.Debug("Currency list stream opened")
	c.Stream(func(w io.Writer) bool {
		select {
		case state, ok := <-states:
			if !ok {
				return false
			}
			c.SSEvent("state", dto.ToCurrencyListStateResponse(state))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	logger.Debug("Currency list stream closed")
}
