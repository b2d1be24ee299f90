package goals

import "identity-market/src/engine"

func Build(core *engine.Engine) *Handler {
	return NewHandler(core)
}
