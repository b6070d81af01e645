// Package storage defines the append-only ledger of users, purchases, and
// chat exchanges, with a database-backed and an in-memory implementation.
// The ledger owns record storage and nothing else; all business logic lives
// in the services layer.
package storage

import (
	"github.com/shopspring/decimal"

	"aurum/internal/models"
)

// Ledger is the record keeper for the gold demo. All operations are
// whole-record writes and reads: no partial updates, no deletions, no
// indices beyond the user identifier. Implementations must provide atomic
// single-record inserts; callers never retry on failure.
type Ledger interface {
	// CreateUser appends a new user record.
	CreateUser(user *models.User) error

	// UserByID returns the user with the given identifier, or USER_NOT_FOUND.
	UserByID(id string) (*models.User, error)

	// UserByName returns the user with the given username, or USER_NOT_FOUND.
	UserByName(username string) (*models.User, error)

	// CreatePurchase appends a purchase record.
	CreatePurchase(purchase *models.Purchase) error

	// PurchasesByUser returns a user's purchases, newest first.
	PurchasesByUser(userID string) ([]models.Purchase, error)

	// CreateExchange appends a chat exchange record.
	CreateExchange(exchange *models.ChatExchange) error

	// ExchangesByUser returns a user's chat exchanges, oldest first,
	// for history replay.
	ExchangesByUser(userID string) ([]models.ChatExchange, error)

	// TotalGoldByUser returns the sum of gold quantities over a user's
	// purchases.
	TotalGoldByUser(userID string) (decimal.Decimal, error)
}
