package model

import (
	"encoding/json"

	"identity-market/pkg/utilities"
	"identity-market/pkg/utilities/timeutil"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventIdentityCreated   EventKind = "IdentityCreated"
	EventIdentityVerified  EventKind = "IdentityVerified"
	EventReputationUpdated EventKind = "ReputationUpdated"
	EventLevelUp           EventKind = "LevelUp"
	EventAchievementAdded  EventKind = "AchievementAdded"
	EventGoalSet           EventKind = "GoalSet"
	EventGoalCompleted     EventKind = "GoalCompleted"
	EventGoalFailed        EventKind = "GoalFailed"
	EventListed            EventKind = "Listed"
	EventUnlisted          EventKind = "Unlisted"
	EventPurchased         EventKind = "Purchased"
)

// IdentityEvent is the envelope emitted once per committed state
// transition. The payload carries enough data for the read-model to
// rebuild its username/owner/listing indexes without querying the core.
type IdentityEvent struct {
	EventId    string           `json:"event_id"`
	Kind       EventKind        `json:"kind"`
	IdentityId uint64           `json:"identity_id"`
	EmittedAt  timeutil.TimeUTC `json:"emitted_at"`
	Payload    json.RawMessage  `json:"payload"`
}

func (e IdentityEvent) Serialize() ([]byte, error) {
	return utilities.Serialize(e)
}

func NewIdentityEvent(kind EventKind, identityId uint64, at timeutil.TimeUTC, payload any) (IdentityEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return IdentityEvent{}, err
	}

	return IdentityEvent{
		EventId:    uuid.New().String(),
		Kind:       kind,
		IdentityId: identityId,
		EmittedAt:  at,
		Payload:    body,
	}, nil
}

type IdentityCreatedPayload struct {
	Owner        Account `json:"owner"`
	Username     string  `json:"username"`
	PrimarySkill string  `json:"primary_skill"`
	BasePrice    uint64  `json:"base_price"`
}

type IdentityVerifiedPayload struct {
	Verifier Account `json:"verifier"`
}

type ReputationUpdatedPayload struct {
	Delta    int64  `json:"delta"`
	Reason   string `json:"reason"`
	NewScore int64  `json:"new_score"`
	NewPrice uint64 `json:"new_price"`
}

type LevelUpPayload struct {
	NewLevel     uint32 `json:"new_level"`
	PrimarySkill string `json:"primary_skill"`
}

type AchievementAddedPayload struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Points      int64  `json:"points"`
	PriceImpact int64  `json:"price_impact"`
	NewPrice    uint64 `json:"new_price"`
}

type GoalSetPayload struct {
	Index       int              `json:"index"`
	Title       string           `json:"title"`
	Deadline    timeutil.TimeUTC `json:"deadline"`
	TargetValue uint64           `json:"target_value"`
}

type GoalResolvedPayload struct {
	Index    int    `json:"index"`
	Points   int64  `json:"points"`
	NewScore int64  `json:"new_score"`
	NewPrice uint64 `json:"new_price"`
}

type ListedPayload struct {
	Seller Account `json:"seller"`
	Price  uint64  `json:"price"`
}

type UnlistedPayload struct {
	Seller Account `json:"seller"`
}

type PurchasedPayload struct {
	Seller   Account `json:"seller"`
	Buyer    Account `json:"buyer"`
	Price    uint64  `json:"price"`
	NewPrice uint64  `json:"new_price"`
}
