package outbox

import (
	"identity-market/src/model"
)

// Sink persists engine events into the outbox table. The cron worker
// drains them to the message broker, so a broker outage never loses a
// state transition.
type Sink struct {
	repository OutboxRepository
}

func NewSink(repository OutboxRepository) *Sink {
	return &Sink{repository: repository}
}

func (s *Sink) Emit(event model.IdentityEvent) error {
	return s.repository.NewEvent(event)
}
