package models

import (
	"time"

	"aurum/internal/uuid"

	"gorm.io/gorm"
)

// ChatExchange represents one chat turn: the user's message, the assistant's
// reply, and whether the message expressed investment intent. Exchanges are
// immutable and replayed oldest first.
type ChatExchange struct {
	ID                 string    `gorm:"primaryKey;size:64" json:"id"`
	UserID             string    `gorm:"size:64;not null;index" json:"userId"`
	Message            string    `gorm:"type:text;not null" json:"message"`
	Response           string    `gorm:"type:text;not null" json:"response"`
	IsInvestmentIntent bool      `gorm:"not null;default:false" json:"isInvestmentIntent"`
	CreatedAt          time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (e *ChatExchange) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New()
	}
	return nil
}
