package engine

import "identity-market/src/model"

const (
	baseMultiplier    = 100 // basis points, 1.0x
	minimumMultiplier = 1
)

// Recompute re-derives the current price from live state. Idempotent:
// calling it any number of times without an intervening mutation yields
// the same result.
func (e *Engine) Recompute(id uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return 0, err
	}

	return e.recomputeLocked(ident), nil
}

// recomputeLocked folds every achievement price impact, the bonuses of
// completed goals and the penalties of failed goals into one multiplier,
// floored so the price shrinks but never reaches zero. Penalties may
// push the current price below the base price.
func (e *Engine) recomputeLocked(ident *model.Identity) uint64 {
	multiplier := int64(baseMultiplier)

	for _, achievement := range e.achievements[ident.Id] {
		multiplier += achievement.PriceImpact
	}
	for _, goal := range e.goals[ident.Id] {
		if goal.Completed {
			multiplier += goal.PriceBonus
		}
		if goal.Failed {
			multiplier -= goal.PricePenalty
		}
	}

	if multiplier < minimumMultiplier {
		multiplier = minimumMultiplier
	}

	ident.PriceMultiplier = multiplier
	ident.CurrentPrice = ident.BasePrice * uint64(multiplier) / baseMultiplier
	return ident.CurrentPrice
}
