package models

import (
	"time"

	"aurum/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Identifiers are opaque
// strings; generated ones are UUIDv7 so lexical order follows creation time.
type Base struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
