package models

// Place is a merchant candidate returned by the nearby-places adapter.
// It is never persisted; it lives for the duration of one recommendation
// request. Types keeps the order the place source supplied - the category
// mapper treats the first recognized type as authoritative.
type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Distance         float64  `json:"distance,omitempty"`
}

// LocationPing is the user's last-known location.
type LocationPing struct {
	ID         uint    `gorm:"primarykey" json:"id"`
	UserID     uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Lat        float64 `gorm:"not null" json:"lat"`
	Lng        float64 `gorm:"not null" json:"lng"`
	RecordedAt int64   `gorm:"autoUpdateTime" json:"recorded_at"`
}
