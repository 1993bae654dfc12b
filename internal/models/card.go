package models

import "time"

// Card represents a stored payment card. Only metadata is kept; the actual
// PAN never touches this system. TokenID is the backend reference token
// issued when the card was scanned.
type Card struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	TokenID   string `gorm:"not null;uniqueIndex" json:"token_id"`
	Brand     string `gorm:"not null" json:"brand"`
	BankName  string `gorm:"not null" json:"bank_name"`
	// CardName is the join key into the rewards matrix. A name that does not
	// match a matrix row yields zero-reward lookups for this card.
	CardName  string    `gorm:"not null" json:"card_name"`
	Gradient  string    `gorm:"default:'blue'" json:"gradient"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
	UpdatedAt time.Time `json:"-"`
}

// CreateCardInput represents the input for adding a new card
type CreateCardInput struct {
	Brand    string `json:"brand"`
	BankName string `json:"bank_name"`
	CardName string `json:"card_name"`
	Gradient string `json:"gradient"`
}

// CardScanResult represents the outcome of the (mocked) card scan flow
type CardScanResult struct {
	Brand    string `json:"brand"`
	BankName string `json:"bank_name"`
	CardName string `json:"card_name"`
	Gradient string `json:"gradient"`
	TokenID  string `json:"token_id"`
}

// BankConnection represents a (mocked) linked bank account
type BankConnection struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	BankName  string    `gorm:"not null" json:"bank_name"`
	Connected bool      `gorm:"default:false" json:"connected"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
