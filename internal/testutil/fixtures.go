package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"aurum/internal/models"
	"aurum/internal/storage"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, ledger storage.Ledger) *models.User {
	t.Helper()
	return CreateTestUserWithName(t, ledger, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithName creates a user with the given username.
func CreateTestUserWithName(t *testing.T, ledger storage.Ledger, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := ledger.CreateUser(user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPurchase creates a purchase of the given amount at the given
// price, with fee and totals derived the way the purchase service does.
func CreateTestPurchase(t *testing.T, ledger storage.Ledger, userID string, amount, pricePerGram int64) *models.Purchase {
	t.Helper()

	amt := decimal.NewFromInt(amount)
	price := decimal.NewFromInt(pricePerGram)
	fee := amt.Mul(decimal.New(3, -2)).Round(2)

	purchase := &models.Purchase{
		UserID:         userID,
		AmountInvested: amt.Round(2),
		GoldQuantity:   amt.DivRound(price, 6),
		PricePerGram:   price.Round(2),
		PlatformFee:    fee,
		TotalAmount:    amt.Add(fee).Round(2),
	}
	if err := ledger.CreatePurchase(purchase); err != nil {
		t.Fatalf("failed to create test purchase: %v", err)
	}
	return purchase
}

// CreateTestExchange creates a chat exchange with a canned response.
func CreateTestExchange(t *testing.T, ledger storage.Ledger, userID, message string, intent bool) *models.ChatExchange {
	t.Helper()

	exchange := &models.ChatExchange{
		UserID:             userID,
		Message:            message,
		Response:           fmt.Sprintf("reply %d", nextID()),
		IsInvestmentIntent: intent,
	}
	if err := ledger.CreateExchange(exchange); err != nil {
		t.Fatalf("failed to create test exchange: %v", err)
	}
	return exchange
}
