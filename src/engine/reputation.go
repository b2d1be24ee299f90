package engine

import (
	"identity-market/pkg/reasoncodes"
	"identity-market/src/model"
)

const pointsPerLevel = 100

// UpdateReputation applies a signed score delta. Owners are gated by the
// configured cooldown; the administrator path bypasses it so operators
// can always correct state.
func (e *Engine) UpdateReputation(id uint64, delta int64, reason string, caller model.Account) (int64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return 0, err
	}
	if err := e.authorizeOwnerOrAdmin(ident, caller); err != nil {
		return 0, err
	}

	if !e.isAdmin(caller) {
		if err := e.checkCooldownLocked(ident); err != nil {
			return 0, err
		}
	}

	e.applyReputationLocked(ident, delta)
	e.recomputeLocked(ident)

	e.emitLocked(model.EventReputationUpdated, id, model.ReputationUpdatedPayload{
		Delta:    delta,
		Reason:   reason,
		NewScore: ident.ReputationScore,
		NewPrice: ident.CurrentPrice,
	})

	return ident.ReputationScore, nil
}

// AddAchievement appends one achievement and credits its points. The
// credit is cooldown-exempt: only direct score edits are gated.
func (e *Engine) AddAchievement(id uint64, title, description string, points, priceImpact int64, caller model.Account) (model.Achievement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return model.Achievement{}, err
	}
	if err := e.authorizeOwnerOrAdmin(ident, caller); err != nil {
		return model.Achievement{}, err
	}
	if title == "" {
		return model.Achievement{}, newError(reasoncodes.ErrInvalidInput, "achievement title must not be empty")
	}
	if points <= 0 {
		return model.Achievement{}, newError(reasoncodes.ErrInvalidInput, "achievement points must be positive, got %d", points)
	}
	if priceImpact < 0 {
		return model.Achievement{}, newError(reasoncodes.ErrInvalidInput, "achievement price impact must not be negative, got %d", priceImpact)
	}

	achievement := model.Achievement{
		Title:       title,
		Description: description,
		Points:      points,
		PriceImpact: priceImpact,
		Timestamp:   e.now(),
	}
	e.achievements[id] = append(e.achievements[id], achievement)
	ident.AchievementCount++

	e.applyReputationLocked(ident, points)
	e.recomputeLocked(ident)

	e.emitLocked(model.EventAchievementAdded, id, model.AchievementAddedPayload{
		Index:       len(e.achievements[id]) - 1,
		Title:       title,
		Points:      points,
		PriceImpact: priceImpact,
		NewPrice:    ident.CurrentPrice,
	})

	return achievement, nil
}

// checkCooldownLocked rejects owner-initiated updates inside the
// cooldown window. A zero timestamp means no update happened yet.
func (e *Engine) checkCooldownLocked(ident *model.Identity) error {
	if ident.LastReputationAt.T == 0 {
		return nil
	}

	elapsed := e.now().SecondsSince(ident.LastReputationAt)
	if elapsed < e.cfg.ReputationCooldownSeconds {
		return newError(reasoncodes.ErrRateLimited,
			"reputation for identity %d was updated %d seconds ago, cooldown is %d seconds",
			ident.Id, elapsed, e.cfg.ReputationCooldownSeconds)
	}
	return nil
}

// applyReputationLocked mutates score, level and the update timestamp.
// The score is clamped at zero; the level never drops below 1. A level
// increase emits a level-up event naming the identity's primary skill.
func (e *Engine) applyReputationLocked(ident *model.Identity, delta int64) {
	score := ident.ReputationScore + delta
	if score < 0 {
		score = 0
	}
	ident.ReputationScore = score

	level := uint32(score / pointsPerLevel)
	if level < 1 {
		level = 1
	}

	previous := ident.SkillLevel
	ident.SkillLevel = level
	if level > previous {
		e.emitLocked(model.EventLevelUp, ident.Id, model.LevelUpPayload{
			NewLevel:     level,
			PrimarySkill: ident.PrimarySkill,
		})
	}

	ident.LastReputationAt = e.now()
}
