package services

import (
	"github.com/shopspring/decimal"

	apperrors "aurum/internal/errors"
	"aurum/internal/models"
	"aurum/internal/storage"
)

// Platform fee and minimum ticket for every purchase.
var (
	// FeeRate is the fixed 3% surcharge applied to the invested amount.
	FeeRate = decimal.New(3, -2)

	// MinInvestment is the smallest accepted investment, in currency units.
	MinInvestment = decimal.NewFromInt(10)
)

// Column scales of the purchase record.
const (
	moneyScale = 2
	goldScale  = 6
)

// maxRecentPurchases caps the purchase list returned with a portfolio.
const maxRecentPurchases = 5

// purchaseService handles purchase calculation and portfolio aggregation.
type purchaseService struct {
	ledger storage.Ledger
	prices Quoter
}

// NewPurchaseService creates a new PurchaseServicer.
func NewPurchaseService(ledger storage.Ledger, prices Quoter) PurchaseServicer {
	return &purchaseService{ledger: ledger, prices: prices}
}

// CreatePurchase converts an invested amount into a gold purchase record
// and appends it to the ledger. With the amount and price fixed, the
// calculation is pure:
//
//	goldQuantity = amount / pricePerGram  (6 dp)
//	platformFee  = amount * FeeRate       (2 dp)
//	totalAmount  = amount + platformFee
//
// Amounts below MinInvestment fail with INVALID_AMOUNT and persist nothing.
func (s *purchaseService) CreatePurchase(userID string, amountInvested, pricePerGram decimal.Decimal) (*models.Purchase, error) {
	if amountInvested.LessThan(MinInvestment) {
		return nil, apperrors.ErrInvalidAmount
	}

	if _, err := s.ledger.UserByID(userID); err != nil {
		return nil, err
	}

	if pricePerGram.Sign() <= 0 {
		pricePerGram = s.prices.Quote().PricePerGram()
	}

	amount := amountInvested.Round(moneyScale)
	fee := amount.Mul(FeeRate).Round(moneyScale)

	purchase := &models.Purchase{
		UserID:         userID,
		AmountInvested: amount,
		GoldQuantity:   amount.DivRound(pricePerGram, goldScale),
		PricePerGram:   pricePerGram.Round(moneyScale),
		PlatformFee:    fee,
		TotalAmount:    amount.Add(fee),
	}
	if err := validatePurchase(purchase); err != nil {
		return nil, err
	}

	if err := s.ledger.CreatePurchase(purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// validatePurchase rejects malformed record shapes before persistence.
func validatePurchase(p *models.Purchase) error {
	if p.UserID == "" {
		return apperrors.WithMessage(apperrors.ErrValidation, "Purchase is missing an owner")
	}
	for _, v := range []decimal.Decimal{p.AmountInvested, p.GoldQuantity, p.PricePerGram, p.PlatformFee, p.TotalAmount} {
		if v.Sign() <= 0 {
			return apperrors.ErrValidation
		}
	}
	if !p.TotalAmount.Equal(p.AmountInvested.Add(p.PlatformFee)) {
		return apperrors.ErrValidation
	}
	return nil
}

// GetPortfolio recomputes the user's aggregate holdings from the full
// purchase history. Nothing here is cached or persisted; two concurrent
// purchases may interleave with a snapshot read, so the view is eventually
// consistent rather than linearizable.
func (s *purchaseService) GetPortfolio(userID string) (*Portfolio, error) {
	if _, err := s.ledger.UserByID(userID); err != nil {
		return nil, err
	}

	purchases, err := s.ledger.PurchasesByUser(userID)
	if err != nil {
		return nil, err
	}

	totalGold := decimal.Zero
	totalInvested := decimal.Zero
	for _, p := range purchases {
		totalGold = totalGold.Add(p.GoldQuantity)
		totalInvested = totalInvested.Add(p.AmountInvested)
	}

	currentValue := totalGold.Mul(s.prices.Quote().PricePerGram()).Round(moneyScale)
	totalGains := currentValue.Sub(totalInvested)

	gainsPct := decimal.Zero
	if totalInvested.Sign() > 0 {
		gainsPct = totalGains.Div(totalInvested).Mul(decimal.NewFromInt(100)).Round(moneyScale)
	}

	if len(purchases) > maxRecentPurchases {
		purchases = purchases[:maxRecentPurchases]
	}

	return &Portfolio{
		TotalGold:       totalGold,
		TotalInvested:   totalInvested,
		CurrentValue:    currentValue,
		TotalGains:      totalGains,
		GainsPercentage: gainsPct,
		Purchases:       purchases,
	}, nil
}
