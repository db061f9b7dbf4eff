package model

import (
	"time"
)

// Feedback represents one user-submitted satisfaction rating.
// Rows are append-only: entries are never updated or deleted once written,
// and CreatedAt is fixed at insertion time.
type Feedback struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Email       string    `json:"email" gorm:"size:100;not null;index"`
	Rating      float64   `json:"rating" gorm:"not null"`
	Description *string   `json:"description" gorm:"size:500"`
	IPAddress   string    `json:"ip_address,omitempty" gorm:"size:50"`
	Screenshot  string    `json:"screenshot,omitempty" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
