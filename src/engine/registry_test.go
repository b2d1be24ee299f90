package engine

import (
	"testing"

	"identity-market/pkg/reasoncodes"
	"identity-market/src/model"
)

func TestCreateSetsInitialState(t *testing.T) {
	e, _, sink := newTestEngine()

	ident, err := e.Create(testOwner, "ada", "cryptography")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if ident.Id != 1 {
		t.Errorf("Expected first identity id 1, got %d", ident.Id)
	}
	if ident.ReputationScore != 100 {
		t.Errorf("Expected initial reputation 100, got %d", ident.ReputationScore)
	}
	if ident.SkillLevel != 1 {
		t.Errorf("Expected initial skill level 1, got %d", ident.SkillLevel)
	}
	if ident.AchievementCount != 0 {
		t.Errorf("Expected zero achievements, got %d", ident.AchievementCount)
	}
	if ident.IsVerified {
		t.Error("New identity must not be verified")
	}
	if ident.BasePrice != testBase || ident.CurrentPrice != testBase {
		t.Errorf("Expected base and current price %d, got %d and %d",
			testBase, ident.BasePrice, ident.CurrentPrice)
	}
	if ident.PriceMultiplier != 100 {
		t.Errorf("Expected multiplier 100, got %d", ident.PriceMultiplier)
	}
	if sink.countOf(model.EventIdentityCreated) != 1 {
		t.Error("Expected one IdentityCreated event")
	}
}

func TestCreateAssignsSequentialIds(t *testing.T) {
	e, _, _ := newTestEngine()

	first, _ := e.Create("0xaaa", "first", "go")
	second, _ := e.Create("0xbbb", "second", "rust")

	if first.Id != 1 || second.Id != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", first.Id, second.Id)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	e, _, _ := newTestEngine()

	cases := []struct {
		name     string
		owner    model.Account
		username string
		skill    string
	}{
		{"empty username", testOwner, "", "go"},
		{"empty skill", testOwner, "ada", ""},
		{"empty owner", "", "ada", "go"},
	}

	for _, tc := range cases {
		_, err := e.Create(tc.owner, tc.username, tc.skill)
		if CodeOf(err) != reasoncodes.ErrInvalidInput {
			t.Errorf("%s: expected InvalidInput, got %v", tc.name, err)
		}
	}
}

func TestCreateRejectsDuplicateOwnerAndUsername(t *testing.T) {
	e, _, _ := newTestEngine()

	if _, err := e.Create(testOwner, "ada", "go"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := e.Create(testOwner, "other", "go"); CodeOf(err) != reasoncodes.ErrAlreadyExists {
		t.Errorf("Second identity for same owner: expected AlreadyExists, got %v", err)
	}
	if _, err := e.Create("0xother", "ada", "go"); CodeOf(err) != reasoncodes.ErrAlreadyExists {
		t.Errorf("Duplicate username: expected AlreadyExists, got %v", err)
	}
}

func TestUsernameNeverReclaimedAfterTransfer(t *testing.T) {
	e, _, _ := newTestEngine()

	ident, _ := e.Create(testOwner, "ada", "go")
	if err := e.List(ident.Id, 500, testOwner); err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if err := e.Buy(ident.Id, 500, testBuyer); err != nil {
		t.Fatalf("Buy failed: %v", err)
	}

	// The seller no longer owns an identity but the username stays taken.
	if _, err := e.Create(testOwner, "ada", "go"); CodeOf(err) != reasoncodes.ErrAlreadyExists {
		t.Errorf("Expected AlreadyExists for consumed username, got %v", err)
	}
}

func TestVerifyAdminOnlyAndIdempotent(t *testing.T) {
	e, _, sink := newTestEngine()
	ident, _ := e.Create(testOwner, "ada", "go")

	if err := e.Verify(ident.Id, testOwner); CodeOf(err) != reasoncodes.ErrUnauthorized {
		t.Errorf("Owner verify: expected Unauthorized, got %v", err)
	}

	if err := e.Verify(ident.Id, testAdmin); err != nil {
		t.Fatalf("Admin verify failed: %v", err)
	}
	if err := e.Verify(ident.Id, testAdmin); err != nil {
		t.Fatalf("Repeated verify must be a no-op, got %v", err)
	}

	got, _ := e.Identity(ident.Id)
	if !got.IsVerified {
		t.Error("Identity should be verified")
	}
	if sink.countOf(model.EventIdentityVerified) != 1 {
		t.Error("Expected exactly one IdentityVerified event")
	}
}

func TestGettersUnknownId(t *testing.T) {
	e, _, _ := newTestEngine()

	if _, err := e.Identity(42); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Identity: expected NotFound, got %v", err)
	}
	if _, err := e.Achievements(42); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Achievements: expected NotFound, got %v", err)
	}
	if _, err := e.Goals(42); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("Goals: expected NotFound, got %v", err)
	}
	if _, err := e.ListingOf(42); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("ListingOf: expected NotFound, got %v", err)
	}
	if _, err := e.IdentityByOwner("0xnobody"); CodeOf(err) != reasoncodes.ErrNotFound {
		t.Errorf("IdentityByOwner: expected NotFound, got %v", err)
	}
}
