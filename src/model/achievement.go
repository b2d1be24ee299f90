package model

import "identity-market/pkg/utilities/timeutil"

// Achievement is an append-only audit record owned by one Identity.
// Achievements are never edited or removed once added.
type Achievement struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Points      int64            `json:"points"`
	PriceImpact int64            `json:"price_impact"` // basis points
	Timestamp   timeutil.TimeUTC `json:"timestamp"`
}
