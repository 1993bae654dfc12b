package rewards

import "time"

// CardRecommendation is the scored result for one card at one merchant.
// Ephemeral - derived per request, never persisted.
type CardRecommendation struct {
	CardName   string  `json:"card_name"`
	RewardRate float64 `json:"reward_rate"`
	// Category is the search term that produced the winning rate.
	Category  string `json:"category"`
	OfferText string `json:"offer_text"`
}

// MetricsCollector defines the hooks the engine reports into. All
// implementations must be safe for concurrent use.
type MetricsCollector interface {
	RecordMatrixLoad(duration time.Duration, cards, categories int)
	RecordRecommendation(category string, rate float64)
	RecordCardMiss(cardName string)
	RecordError(operation, errType string)
}
