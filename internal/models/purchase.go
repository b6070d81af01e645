package models

import (
	"time"

	"aurum/internal/uuid"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase represents a completed gold purchase. Purchases are append-only
// ledger records: created exactly once, never mutated or deleted.
//
// Invariants, each at the column's declared scale:
//
//	TotalAmount  = AmountInvested + PlatformFee
//	PlatformFee  = AmountInvested * fee rate
//	GoldQuantity = AmountInvested / PricePerGram
type Purchase struct {
	ID             string          `gorm:"primaryKey;size:64" json:"id"`
	UserID         string          `gorm:"size:64;not null;index" json:"userId"`
	AmountInvested decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amountInvested"`
	GoldQuantity   decimal.Decimal `gorm:"type:decimal(10,6);not null" json:"goldQuantity"`
	PricePerGram   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"pricePerGram"`
	PlatformFee    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"platformFee"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	CreatedAt      time.Time       `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}
