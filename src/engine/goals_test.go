package engine

import (
	"testing"

	"identity-market/pkg/reasoncodes"
	"identity-market/pkg/utilities/timeutil"
	"identity-market/src/model"
)

func testGoal(deadline timeutil.TimeUTC) model.Goal {
	return model.Goal{
		Title:         "Ship v1",
		Description:   "release the first version",
		Deadline:      deadline,
		TargetValue:   10,
		RewardPoints:  50,
		PenaltyPoints: 30,
		PriceBonus:    20,
		PricePenalty:  15,
	}
}

func TestSetGoalValidation(t *testing.T) {
	e, clock, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")
	future := clock.now().AddSeconds(86_400)

	valid := testGoal(future)

	withTitle := valid
	withTitle.Title = ""
	if _, err := e.SetGoal(ident.Id, withTitle, testOwner); CodeOf(err) != reasoncodes.ErrInvalidInput {
		t.Errorf("Empty title: expected InvalidInput, got %v", err)
	}

	withPast := valid
	withPast.Deadline = clock.now()
	if _, err := e.SetGoal(ident.Id, withPast, testOwner); CodeOf(err) != reasoncodes.ErrInvalidInput {
		t.Errorf("Deadline not in future: expected InvalidInput, got %v", err)
	}

	withTarget := valid
	withTarget.TargetValue = 0
	if _, err := e.SetGoal(ident.Id, withTarget, testOwner); CodeOf(err) != reasoncodes.ErrInvalidInput {
		t.Errorf("Zero target: expected InvalidInput, got %v", err)
	}

	if _, err := e.SetGoal(ident.Id, valid, "0xstranger"); CodeOf(err) != reasoncodes.ErrUnauthorized {
		t.Errorf("Stranger: expected Unauthorized, got %v", err)
	}

	goal, err := e.SetGoal(ident.Id, valid, testOwner)
	if err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}
	if !goal.Pending() || goal.CurrentValue != 0 {
		t.Errorf("New goal must be pending with zero progress: %+v", goal)
	}
}

func TestGoalCompletionAppliesRewardOnce(t *testing.T) {
	e, clock, sink := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.SetGoal(ident.Id, testGoal(clock.now().AddSeconds(86_400)), testOwner); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}

	goal, err := e.RecordGoalProgress(ident.Id, 0, 5, testOwner)
	if err != nil {
		t.Fatalf("RecordGoalProgress failed: %v", err)
	}
	if goal.Completed || goal.CurrentValue != 5 {
		t.Errorf("Goal should still be pending at 5/10: %+v", goal)
	}

	goal, err = e.RecordGoalProgress(ident.Id, 0, 12, testOwner)
	if err != nil {
		t.Fatalf("RecordGoalProgress failed: %v", err)
	}
	if !goal.Completed {
		t.Fatal("Goal should be completed at 12/10")
	}

	got, _ := e.Identity(ident.Id)
	if got.ReputationScore != 150 {
		t.Errorf("Expected score 150 after reward, got %d", got.ReputationScore)
	}
	if got.PriceMultiplier != 120 {
		t.Errorf("Expected multiplier 120 after bonus, got %d", got.PriceMultiplier)
	}

	// Progress against a resolved goal is a no-op, not an error.
	if _, err := e.RecordGoalProgress(ident.Id, 0, 100, testOwner); err != nil {
		t.Fatalf("Progress on resolved goal failed: %v", err)
	}
	got, _ = e.Identity(ident.Id)
	if got.ReputationScore != 150 {
		t.Errorf("Reward applied more than once: score %d", got.ReputationScore)
	}
	if sink.countOf(model.EventGoalCompleted) != 1 {
		t.Error("Expected exactly one GoalCompleted event")
	}
}

func TestGoalDeadlineFailureIsTerminalAndIdempotent(t *testing.T) {
	e, clock, sink := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.SetGoal(ident.Id, testGoal(clock.now().AddSeconds(100)), testOwner); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}

	// Before the deadline nothing happens.
	goal, err := e.EvaluateGoalDeadline(ident.Id, 0)
	if err != nil {
		t.Fatalf("EvaluateGoalDeadline failed: %v", err)
	}
	if !goal.Pending() {
		t.Fatal("Goal must stay pending before the deadline")
	}

	clock.advance(101)
	goal, err = e.EvaluateGoalDeadline(ident.Id, 0)
	if err != nil {
		t.Fatalf("EvaluateGoalDeadline failed: %v", err)
	}
	if !goal.Failed {
		t.Fatal("Expired goal must resolve as failed")
	}

	got, _ := e.Identity(ident.Id)
	if got.ReputationScore != 70 {
		t.Errorf("Expected score 70 after penalty, got %d", got.ReputationScore)
	}
	if got.PriceMultiplier != 85 {
		t.Errorf("Expected multiplier 85 after penalty, got %d", got.PriceMultiplier)
	}

	// Re-evaluating after resolution applies nothing.
	for i := 0; i < 3; i++ {
		if _, err := e.EvaluateGoalDeadline(ident.Id, 0); err != nil {
			t.Fatalf("Re-evaluation failed: %v", err)
		}
	}
	got, _ = e.Identity(ident.Id)
	if got.ReputationScore != 70 {
		t.Errorf("Penalty applied more than once: score %d", got.ReputationScore)
	}
	if sink.countOf(model.EventGoalFailed) != 1 {
		t.Error("Expected exactly one GoalFailed event")
	}
}

func TestGoalCompletionBeatsLateDeadline(t *testing.T) {
	e, clock, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.SetGoal(ident.Id, testGoal(clock.now().AddSeconds(100)), testOwner); err != nil {
		t.Fatalf("SetGoal failed: %v", err)
	}
	if _, err := e.RecordGoalProgress(ident.Id, 0, 10, testOwner); err != nil {
		t.Fatalf("RecordGoalProgress failed: %v", err)
	}

	clock.advance(200)
	goal, err := e.EvaluateGoalDeadline(ident.Id, 0)
	if err != nil {
		t.Fatalf("EvaluateGoalDeadline failed: %v", err)
	}
	if goal.Failed || !goal.Completed {
		t.Errorf("Completed goal must never flip to failed: %+v", goal)
	}
}

func TestGoalUnknownIndex(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.RecordGoalProgress(ident.Id, 0, 1, testOwner); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Expected NotFound for unknown goal, got %v", err)
	}
	if _, err := e.EvaluateGoalDeadline(ident.Id, 3); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Expected NotFound for unknown goal, got %v", err)
	}
}
