package engine

import (
	"testing"

	"identity-market/pkg/reasoncodes"
	"identity-market/src/model"
)

func TestUpdateReputationLeveling(t *testing.T) {
	e, clock, sink := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	score, err := e.UpdateReputation(ident.Id, 100, "milestone", testOwner)
	if err != nil {
		t.Fatalf("UpdateReputation failed: %v", err)
	}
	if score != 200 {
		t.Errorf("Expected score 200, got %d", score)
	}

	got, _ := e.Identity(ident.Id)
	if got.SkillLevel != 2 {
		t.Errorf("Expected level 2 at score 200, got %d", got.SkillLevel)
	}
	if sink.countOf(model.EventLevelUp) != 1 {
		t.Error("Expected one LevelUp event")
	}

	clock.advance(testCooldown)
	if _, err := e.UpdateReputation(ident.Id, 100, "milestone", testOwner); err != nil {
		t.Fatalf("UpdateReputation failed: %v", err)
	}

	got, _ = e.Identity(ident.Id)
	if got.SkillLevel != 3 {
		t.Errorf("Expected level 3 at score 300, got %d", got.SkillLevel)
	}
}

func TestUpdateReputationClampsAtZero(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	score, err := e.UpdateReputation(ident.Id, -10_000, "slashing", testAdmin)
	if err != nil {
		t.Fatalf("UpdateReputation failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected score clamped to 0, got %d", score)
	}

	got, _ := e.Identity(ident.Id)
	if got.SkillLevel != 1 {
		t.Errorf("Level must never drop below 1, got %d", got.SkillLevel)
	}
}

func TestUpdateReputationAuthorization(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.UpdateReputation(ident.Id, 10, "x", "0xstranger"); CodeOf(err) != reasoncodes.ErrUnauthorized {
		t.Errorf("Expected Unauthorized, got %v", err)
	}
	if _, err := e.UpdateReputation(99, 10, "x", testOwner); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestUpdateReputationCooldown(t *testing.T) {
	e, clock, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.UpdateReputation(ident.Id, 10, "first", testOwner); err != nil {
		t.Fatalf("First owner update failed: %v", err)
	}

	clock.advance(testCooldown / 2)
	if _, err := e.UpdateReputation(ident.Id, 10, "second", testOwner); CodeOf(err) != reasoncodes.ErrRateLimited {
		t.Errorf("Owner update inside cooldown: expected RateLimited, got %v", err)
	}

	clock.advance(testCooldown)
	if _, err := e.UpdateReputation(ident.Id, 10, "third", testOwner); err != nil {
		t.Errorf("Owner update after cooldown failed: %v", err)
	}
}

func TestAdminBypassesCooldown(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.UpdateReputation(ident.Id, 10, "first", testAdmin); err != nil {
		t.Fatalf("First admin update failed: %v", err)
	}
	if _, err := e.UpdateReputation(ident.Id, 10, "second", testAdmin); err != nil {
		t.Fatalf("Second admin update inside cooldown failed: %v", err)
	}
}

func TestAddAchievement(t *testing.T) {
	e, _, sink := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	achievement, err := e.AddAchievement(ident.Id, "First Deploy", "shipped to prod", 25, 10, testOwner)
	if err != nil {
		t.Fatalf("AddAchievement failed: %v", err)
	}
	if achievement.Points != 25 {
		t.Errorf("Expected 25 points, got %d", achievement.Points)
	}

	got, _ := e.Identity(ident.Id)
	if got.ReputationScore != 125 {
		t.Errorf("Expected score 125 after achievement, got %d", got.ReputationScore)
	}
	if got.AchievementCount != 1 {
		t.Errorf("Expected achievement count 1, got %d", got.AchievementCount)
	}
	if got.PriceMultiplier != 110 {
		t.Errorf("Expected multiplier 110 after 10bp impact, got %d", got.PriceMultiplier)
	}
	if sink.countOf(model.EventAchievementAdded) != 1 {
		t.Error("Expected one AchievementAdded event")
	}

	log, _ := e.Achievements(ident.Id)
	if len(log) != 1 || log[0].Title != "First Deploy" {
		t.Errorf("Unexpected achievement log: %+v", log)
	}
}

func TestAddAchievementBypassesCooldown(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if _, err := e.UpdateReputation(ident.Id, 10, "direct", testOwner); err != nil {
		t.Fatalf("Direct update failed: %v", err)
	}

	// Achievement-driven increases are not subject to the anti-spam rule.
	if _, err := e.AddAchievement(ident.Id, "Quick Win", "", 5, 0, testOwner); err != nil {
		t.Errorf("Achievement inside cooldown window failed: %v", err)
	}
}

func TestAddAchievementValidation(t *testing.T) {
	e, _, _ := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	cases := []struct {
		name   string
		title  string
		points int64
		impact int64
		caller model.Account
		code   reasoncodes.ReasonCode
	}{
		{"empty title", "", 10, 0, testOwner, reasoncodes.ErrInvalidInput},
		{"zero points", "t", 0, 0, testOwner, reasoncodes.ErrInvalidInput},
		{"negative points", "t", -5, 0, testOwner, reasoncodes.ErrInvalidInput},
		{"negative impact", "t", 5, -1, testOwner, reasoncodes.ErrInvalidInput},
		{"stranger", "t", 5, 0, "0xstranger", reasoncodes.ErrUnauthorized},
	}

	for _, tc := range cases {
		_, err := e.AddAchievement(ident.Id, tc.title, "", tc.points, tc.impact, tc.caller)
		if CodeOf(err) != tc.code {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}
