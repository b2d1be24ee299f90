package model

import "identity-market/pkg/utilities/timeutil"

// Goal is owned by one Identity and mutable until resolved.
// Lifecycle: pending -> {completed | failed}; resolution is terminal.
type Goal struct {
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Deadline      timeutil.TimeUTC `json:"deadline"`
	TargetValue   uint64           `json:"target_value"`
	CurrentValue  uint64           `json:"current_value"`
	RewardPoints  int64            `json:"reward_points"`
	PenaltyPoints int64            `json:"penalty_points"`
	PriceBonus    int64            `json:"price_bonus"`   // basis points
	PricePenalty  int64            `json:"price_penalty"` // basis points
	Completed     bool             `json:"completed"`
	Failed        bool             `json:"failed"`
}

func (g *Goal) Pending() bool {
	return !g.Completed && !g.Failed
}
