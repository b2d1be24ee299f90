package engine

import (
	"identity-market/pkg/reasoncodes"
	"identity-market/pkg/utilities"
	"identity-market/src/model"
)

const (
	initialReputationScore = 100
	initialSkillLevel      = 1
	defaultPriceMultiplier = 100 // basis points, 1.0x
)

// Create mints one identity for owner. Usernames are consumed
// permanently: they are never released, even when ownership transfers.
func (e *Engine) Create(owner model.Account, username, primarySkill string) (model.Identity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if username == "" {
		return model.Identity{}, newError(reasoncodes.ErrInvalidInput, "username must not be empty")
	}
	if primarySkill == "" {
		return model.Identity{}, newError(reasoncodes.ErrInvalidInput, "primary skill must not be empty")
	}
	if owner == "" {
		return model.Identity{}, newError(reasoncodes.ErrInvalidInput, "owner account must not be empty")
	}
	if existing, ok := e.ownerIndex[owner]; ok {
		return model.Identity{}, newError(reasoncodes.ErrAlreadyExists,
			"account %s already owns identity %d", owner, existing)
	}
	if e.usernames[username] {
		return model.Identity{}, newError(reasoncodes.ErrAlreadyExists,
			"username %q is already taken", username)
	}

	id := e.nextId
	e.nextId++

	ident := &model.Identity{
		Id:              id,
		Owner:           owner,
		Username:        username,
		PrimarySkill:    primarySkill,
		ReputationScore: initialReputationScore,
		SkillLevel:      initialSkillLevel,
		BasePrice:       e.cfg.DefaultBasePrice,
		CurrentPrice:    e.cfg.DefaultBasePrice,
		PriceMultiplier: defaultPriceMultiplier,
	}

	e.identities[id] = ident
	e.ownerIndex[owner] = id
	e.usernames[username] = true

	e.emitLocked(model.EventIdentityCreated, id, model.IdentityCreatedPayload{
		Owner:        owner,
		Username:     username,
		PrimarySkill: primarySkill,
		BasePrice:    ident.BasePrice,
	})

	return *ident, nil
}

// Verify marks an identity as verified. Administrator only; idempotent.
func (e *Engine) Verify(id uint64, caller model.Account) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return err
	}
	if !e.isAdmin(caller) {
		return newError(reasoncodes.ErrUnauthorized,
			"account %s is not the registry administrator", caller)
	}

	if ident.IsVerified {
		return nil
	}
	ident.IsVerified = true

	e.emitLocked(model.EventIdentityVerified, id, model.IdentityVerifiedPayload{Verifier: caller})
	return nil
}

// Identity returns a copy of the live record.
func (e *Engine) Identity(id uint64) (model.Identity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return model.Identity{}, err
	}
	return *ident, nil
}

// IdentityByOwner resolves the owner index.
func (e *Engine) IdentityByOwner(owner model.Account) (model.Identity, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, ok := e.ownerIndex[owner]
	if !ok {
		return model.Identity{}, newError(reasoncodes.ErrNotFound,
			"account %s owns no identity", owner)
	}
	return *e.identities[id], nil
}

// Achievements returns the append-only achievement log.
func (e *Engine) Achievements(id uint64) ([]model.Achievement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.identityLocked(id); err != nil {
		return nil, err
	}

	log := e.achievements[id]
	out := make([]model.Achievement, len(log))
	copy(out, log)
	return out, nil
}

// Goals returns copies of all goals of an identity, resolved or not.
func (e *Engine) Goals(id uint64) ([]model.Goal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.identityLocked(id); err != nil {
		return nil, err
	}

	return utilities.Map(e.goals[id], func(g *model.Goal) model.Goal { return *g }), nil
}
