package services

import (
	"context"

	"github.com/shopspring/decimal"

	"aurum/internal/models"
	"aurum/internal/pricing"
)

// Quoter supplies the current simulated gold quote.
type Quoter interface {
	Quote() pricing.Quote
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	EnsureSeedUser(username string) (*models.User, error)
}

// Portfolio is a derived, non-persisted view of a user's aggregate
// holdings. It is recomputed on every request, never cached.
type Portfolio struct {
	TotalGold       decimal.Decimal   `json:"totalGold"`
	TotalInvested   decimal.Decimal   `json:"totalInvested"`
	CurrentValue    decimal.Decimal   `json:"currentValue"`
	TotalGains      decimal.Decimal   `json:"totalGains"`
	GainsPercentage decimal.Decimal   `json:"gainsPercentage"`
	Purchases       []models.Purchase `json:"purchases"`
}

// PurchaseServicer defines the contract for purchase-related business logic.
type PurchaseServicer interface {
	// CreatePurchase records a gold purchase. A zero pricePerGram means
	// "use the current quoted price".
	CreatePurchase(userID string, amountInvested, pricePerGram decimal.Decimal) (*models.Purchase, error)
	GetPortfolio(userID string) (*Portfolio, error)
}

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	Response            string `json:"response"`
	HasInvestmentIntent bool   `json:"hasInvestmentIntent"`
	GoldPrice           int64  `json:"goldPrice"`
}

// ChatServicer defines the contract for the conversation pipeline.
type ChatServicer interface {
	ProcessMessage(ctx context.Context, userID, message string) (*ChatResult, error)
	GetHistory(userID string) ([]models.ChatExchange, error)
}
