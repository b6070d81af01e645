package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "aurum/internal/errors"
	"aurum/internal/services"
)

// PurchaseHandler handles purchase and portfolio requests.
type PurchaseHandler struct {
	purchaseService services.PurchaseServicer
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService services.PurchaseServicer) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// PurchaseRequest represents the request payload for buying gold.
type PurchaseRequest struct {
	AmountInvested float64 `json:"amountInvested" binding:"required,currency_amount"`
	UserID         string  `json:"userId"`
}

// CreatePurchase handles a gold purchase at the current quoted price.
// @Summary     Buy gold
// @Description Invest an amount in digital gold at the current price per gram
// @Tags        purchases
// @Accept      json
// @Produce     json
// @Param       request body PurchaseRequest true "Investment amount"
// @Success     200 {object} map[string]interface{} "Purchase confirmation"
// @Failure     400 {object} ErrorResponse "Amount below minimum or malformed"
// @Failure     500 {object} ErrorResponse "Storage or validation error"
// @Router      /purchase [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidAmount, "A valid investment amount is required"))
		return
	}

	// Zero price means the service uses the current quote.
	purchase, err := h.purchaseService.CreatePurchase(
		userOrDefault(req.UserID), decimal.NewFromFloat(req.AmountInvested), decimal.Zero)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"purchase": purchase,
		"message":  "Gold purchase completed successfully!",
	})
}

// GetPortfolio returns the user's derived portfolio snapshot.
// @Summary     Get portfolio
// @Description Get aggregate gold holdings, gains, and the five most recent purchases
// @Tags        purchases
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {object} services.Portfolio "Portfolio snapshot"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Storage error"
// @Router      /portfolio/{userId} [get]
func (h *PurchaseHandler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.purchaseService.GetPortfolio(c.Param("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, portfolio)
}
