package engine

import (
	"encoding/json"
	"fmt"
	"strconv"

	"identity-market/pkg/utilities"
)

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Document is the tokenURI-equivalent metadata view of an identity.
type Document struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

func (d Document) JSON() ([]byte, error) {
	return json.Marshal(d)
}

// Render produces the descriptive document for an identity: name,
// description, and exactly six attributes. Pure function of identity
// state, byte-for-byte deterministic for the same state.
func (e *Engine) Render(id uint64) (Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ident, err := e.identityLocked(id)
	if err != nil {
		return Document{}, err
	}

	return Document{
		Name: ident.Username,
		Description: fmt.Sprintf("%s is a level %d %s with a reputation score of %d",
			ident.Username, ident.SkillLevel, ident.PrimarySkill, ident.ReputationScore),
		Attributes: []Attribute{
			{TraitType: "Reputation Score", Value: strconv.FormatInt(ident.ReputationScore, 10)},
			{TraitType: "Skill Level", Value: strconv.FormatUint(uint64(ident.SkillLevel), 10)},
			{TraitType: "Achievement Count", Value: strconv.FormatUint(uint64(ident.AchievementCount), 10)},
			{TraitType: "Primary Skill", Value: ident.PrimarySkill},
			{TraitType: "Verified", Value: utilities.Ternary(ident.IsVerified, "true", "false")},
			{TraitType: "Current Price", Value: strconv.FormatUint(ident.CurrentPrice, 10)},
		},
	}, nil
}
