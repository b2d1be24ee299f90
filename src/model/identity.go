package model

import (
	"identity-market/pkg/utilities/timeutil"
)

// Account is a wallet address as presented by the wallet layer.
// Addresses are compared case-sensitively.
type Account string

// Identity is the core owned record representing one user's reputation
// token. Identities are permanent: once created they are never destroyed
// and their username is never released, even after a marketplace transfer.
type Identity struct {
	Id               uint64           `json:"id"`
	Owner            Account          `json:"owner"`
	Username         string           `json:"username"`
	PrimarySkill     string           `json:"primary_skill"`
	ReputationScore  int64            `json:"reputation_score"`
	SkillLevel       uint32           `json:"skill_level"`
	AchievementCount uint32           `json:"achievement_count"`
	IsVerified       bool             `json:"is_verified"`
	LastReputationAt timeutil.TimeUTC `json:"last_reputation_at"`
	BasePrice        uint64           `json:"base_price"`
	CurrentPrice     uint64           `json:"current_price"`
	PriceMultiplier  int64            `json:"price_multiplier"`
}
