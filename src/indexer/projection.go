package indexer

import (
	"encoding/json"
	"fmt"

	"identity-market/src/model"
)

// Projection folds emitted core events into the query-optimized view
// tables: a username/owner index over identities and a listing index.
// It owns no business rules; every value it writes was computed by the
// core and carried in the event payload.
type Projection struct {
	views ViewRepository
}

func NewProjection(views ViewRepository) *Projection {
	return &Projection{views: views}
}

func (p *Projection) Apply(event model.IdentityEvent) error {
	switch event.Kind {
	case model.EventIdentityCreated:
		var payload model.IdentityCreatedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.views.UpsertIdentity(model.IdentityView{
			IdentityId:      event.IdentityId,
			Owner:           string(payload.Owner),
			Username:        payload.Username,
			PrimarySkill:    payload.PrimarySkill,
			ReputationScore: 100,
			SkillLevel:      1,
			CurrentPrice:    payload.BasePrice,
		})

	case model.EventIdentityVerified:
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.IsVerified = true
		})

	case model.EventReputationUpdated:
		var payload model.ReputationUpdatedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.ReputationScore = payload.NewScore
			view.SkillLevel = levelForScore(payload.NewScore)
			view.CurrentPrice = payload.NewPrice
		})

	case model.EventLevelUp:
		var payload model.LevelUpPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.SkillLevel = payload.NewLevel
		})

	case model.EventAchievementAdded:
		var payload model.AchievementAddedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.AchievementCount++
			view.ReputationScore += payload.Points
			view.CurrentPrice = payload.NewPrice
		})

	case model.EventGoalCompleted, model.EventGoalFailed:
		var payload model.GoalResolvedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.ReputationScore = payload.NewScore
			view.SkillLevel = levelForScore(payload.NewScore)
			view.CurrentPrice = payload.NewPrice
		})

	case model.EventGoalSet:
		// Goals carry no view table; nothing to index.
		return nil

	case model.EventListed:
		var payload model.ListedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		return p.views.UpsertListing(model.ListingView{
			IdentityId: event.IdentityId,
			Seller:     string(payload.Seller),
			Price:      payload.Price,
			IsListed:   true,
		})

	case model.EventUnlisted:
		return p.views.UpsertListing(model.ListingView{
			IdentityId: event.IdentityId,
			IsListed:   false,
		})

	case model.EventPurchased:
		var payload model.PurchasedPayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			return err
		}
		if err := p.views.UpsertListing(model.ListingView{
			IdentityId: event.IdentityId,
			IsListed:   false,
		}); err != nil {
			return err
		}
		return p.mutateIdentity(event, func(view *model.IdentityView) {
			view.Owner = string(payload.Buyer)
			view.CurrentPrice = payload.NewPrice
		})

	default:
		return fmt.Errorf("unknown event kind %q for event %s", event.Kind, event.EventId)
	}
}

// levelForScore mirrors the core's leveling formula. Score-carrying
// payloads name no level, so the projection derives it; a score drop
// across a level boundary emits no LevelUp event and would otherwise
// leave the view on the old, higher level.
func levelForScore(score int64) uint32 {
	level := score / 100
	if level < 1 {
		level = 1
	}
	return uint32(level)
}

func (p *Projection) mutateIdentity(event model.IdentityEvent, mutate func(*model.IdentityView)) error {
	view, err := p.views.GetIdentity(event.IdentityId)
	if err != nil {
		return err
	}
	mutate(&view)
	return p.views.UpsertIdentity(view)
}
