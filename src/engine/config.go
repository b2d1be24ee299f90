package engine

import "identity-market/src/model"

// Config is the process-wide engine configuration: the single
// administrator account, the anti-spam cooldown between owner-initiated
// reputation updates, and the price every new identity starts at.
type Config struct {
	AdminAccount              model.Account
	ReputationCooldownSeconds int64
	DefaultBasePrice          uint64
}

type ConfigJson struct {
	AdminAccount              string `json:"admin_account"`
	ReputationCooldownSeconds int64  `json:"reputation_cooldown_seconds"`
	DefaultBasePrice          uint64 `json:"default_base_price"`
}

func (cj ConfigJson) ConvertToDomain() Config {
	return Config{
		AdminAccount:              model.Account(cj.AdminAccount),
		ReputationCooldownSeconds: cj.ReputationCooldownSeconds,
		DefaultBasePrice:          cj.DefaultBasePrice,
	}
}
