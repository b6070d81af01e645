package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aurum/internal/services"
)

// PriceHandler serves the simulated gold market quote.
type PriceHandler struct {
	prices services.Quoter
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(prices services.Quoter) *PriceHandler {
	return &PriceHandler{prices: prices}
}

// GetGoldPrice returns the current simulated gold price and market data.
// @Summary     Get gold price
// @Description Get the current simulated gold price with 24h change, high, low, and volume
// @Tags        prices
// @Produce     json
// @Success     200 {object} pricing.Quote "Current quote"
// @Router      /gold-price [get]
func (h *PriceHandler) GetGoldPrice(c *gin.Context) {
	c.JSON(http.StatusOK, h.prices.Quote())
}
