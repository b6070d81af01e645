package storage

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "aurum/internal/errors"
	"aurum/internal/models"
)

// gormLedger persists ledger records through GORM (SQLite or Postgres).
type gormLedger struct {
	db *gorm.DB
}

// NewGormLedger creates a Ledger backed by the given GORM database.
func NewGormLedger(db *gorm.DB) Ledger {
	return &gormLedger{db: db}
}

func (l *gormLedger) CreateUser(user *models.User) error {
	if err := l.db.Create(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (l *gormLedger) UserByID(id string) (*models.User, error) {
	var user models.User
	if err := l.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &user, nil
}

func (l *gormLedger) UserByName(username string) (*models.User, error) {
	var user models.User
	if err := l.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &user, nil
}

func (l *gormLedger) CreatePurchase(purchase *models.Purchase) error {
	if err := l.db.Create(purchase).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (l *gormLedger) PurchasesByUser(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	// UUIDv7 IDs break ties when two records share a timestamp.
	if err := l.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&purchases).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return purchases, nil
}

func (l *gormLedger) CreateExchange(exchange *models.ChatExchange) error {
	if err := l.db.Create(exchange).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (l *gormLedger) ExchangesByUser(userID string) ([]models.ChatExchange, error) {
	var exchanges []models.ChatExchange
	if err := l.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&exchanges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return exchanges, nil
}

func (l *gormLedger) TotalGoldByUser(userID string) (decimal.Decimal, error) {
	// Summed in Go so decimal precision does not depend on the driver's
	// numeric handling.
	purchases, err := l.PurchasesByUser(userID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range purchases {
		total = total.Add(p.GoldQuantity)
	}
	return total, nil
}
