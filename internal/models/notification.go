package models

import "time"

// Notification records a card suggestion surfaced for a merchant the user
// was near. Reason carries the offer text shown to the user.
type Notification struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	MerchantName string    `gorm:"not null" json:"merchant_name"`
	CardID       uint      `gorm:"not null" json:"card_id"`
	CardName     string    `gorm:"not null" json:"card_name"`
	RewardRate   float64   `gorm:"not null" json:"reward_rate"`
	Reason       string    `json:"reason"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	Read         bool      `gorm:"default:false" json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}
