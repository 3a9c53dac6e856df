package models

import (
	"time"

	"github.com/google/uuid"
)

// EatenProduct is one ledger line: a catalog product eaten by Owner.
// Calories is a snapshot taken when the entry was logged.
type EatenProduct struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"not null" json:"title"`
	Weight   float64   `gorm:"not null" json:"weight"`
	Calories int       `gorm:"not null" json:"calories"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Owner    uuid.UUID `gorm:"type:uuid;index;not null" json:"owner"`
}
