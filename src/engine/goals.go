package engine

import (
	"identity-market/pkg/reasoncodes"
	"identity-market/src/model"
)

// SetGoal stores a new pending goal. The deadline must lie strictly in
// the future and the target must be positive.
func (e *Engine) SetGoal(id uint64, goal model.Goal, caller model.Account) (model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return model.Goal{}, err
	}
	if err := e.authorizeOwnerOrAdmin(ident, caller); err != nil {
		return model.Goal{}, err
	}
	if goal.Title == "" {
		return model.Goal{}, newError(reasoncodes.ErrInvalidInput, "goal title must not be empty")
	}
	if !goal.Deadline.After(e.now()) {
		return model.Goal{}, newError(reasoncodes.ErrInvalidInput, "goal deadline must lie in the future")
	}
	if goal.TargetValue == 0 {
		return model.Goal{}, newError(reasoncodes.ErrInvalidInput, "goal target value must be positive")
	}
	if goal.RewardPoints < 0 || goal.PenaltyPoints < 0 {
		return model.Goal{}, newError(reasoncodes.ErrInvalidInput, "goal reward and penalty points must not be negative")
	}
	if goal.PriceBonus < 0 || goal.PricePenalty < 0 {
		return model.Goal{}, newError(reasoncodes.ErrInvalidInput, "goal price bonus and penalty must not be negative")
	}

	// Stored goals always start pending with zero progress, whatever
	// the caller put in the request.
	goal.CurrentValue = 0
	goal.Completed = false
	goal.Failed = false

	stored := goal
	e.goals[id] = append(e.goals[id], &stored)

	e.emitLocked(model.EventGoalSet, id, model.GoalSetPayload{
		Index:       len(e.goals[id]) - 1,
		Title:       goal.Title,
		Deadline:    goal.Deadline,
		TargetValue: goal.TargetValue,
	})

	return stored, nil
}

// RecordGoalProgress updates a pending goal's progress and resolves it
// as completed once the target is reached, crediting the reward
// (cooldown-exempt) and folding the price bonus into the multiplier.
// Progress against an already-resolved goal is a no-op, not an error.
func (e *Engine) RecordGoalProgress(id uint64, goalIndex int, newValue uint64, caller model.Account) (model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return model.Goal{}, err
	}
	if err := e.authorizeOwnerOrAdmin(ident, caller); err != nil {
		return model.Goal{}, err
	}

	goal, err := e.goalLocked(id, goalIndex)
	if err != nil {
		return model.Goal{}, err
	}
	if !goal.Pending() {
		return *goal, nil
	}

	goal.CurrentValue = newValue
	if goal.CurrentValue >= goal.TargetValue {
		goal.Completed = true
		e.applyReputationLocked(ident, goal.RewardPoints)
		e.recomputeLocked(ident)

		e.emitLocked(model.EventGoalCompleted, id, model.GoalResolvedPayload{
			Index:    goalIndex,
			Points:   goal.RewardPoints,
			NewScore: ident.ReputationScore,
			NewPrice: ident.CurrentPrice,
		})
	}

	return *goal, nil
}

// EvaluateGoalDeadline lazily resolves an expired pending goal as
// failed, applying the penalty and the price penalty exactly once.
// Re-invoking after resolution is a no-op.
func (e *Engine) EvaluateGoalDeadline(id uint64, goalIndex int) (model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return model.Goal{}, err
	}

	goal, err := e.goalLocked(id, goalIndex)
	if err != nil {
		return model.Goal{}, err
	}
	if !goal.Pending() {
		return *goal, nil
	}
	if !e.now().After(goal.Deadline) {
		return *goal, nil
	}

	goal.Failed = true
	e.applyReputationLocked(ident, -goal.PenaltyPoints)
	e.recomputeLocked(ident)

	e.emitLocked(model.EventGoalFailed, id, model.GoalResolvedPayload{
		Index:    goalIndex,
		Points:   -goal.PenaltyPoints,
		NewScore: ident.ReputationScore,
		NewPrice: ident.CurrentPrice,
	})

	return *goal, nil
}

func (e *Engine) goalLocked(id uint64, goalIndex int) (*model.Goal, error) {
	goals := e.goals[id]
	if goalIndex < 0 || goalIndex >= len(goals) {
		return nil, newError(reasoncodes.ErrNotFound,
			"identity %d has no goal with index %d", id, goalIndex)
	}
	return goals[goalIndex], nil
}
