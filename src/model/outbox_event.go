package model

import (
	"encoding/json"

	"identity-market/pkg/utilities/timeutil"
)

type OutboxEvent struct {
	Id         int    `gorm:"primaryKey;autoIncrement"`
	EventId    string `gorm:"uniqueIndex"`
	IdentityId uint64 `gorm:"index"`
	Kind       string
	EmittedAt  int64
	Body       string
	Retry      int
	Processed  bool `gorm:"index"`
}

func (oe OutboxEvent) MapToIdentityEvent() IdentityEvent {
	return IdentityEvent{
		EventId:    oe.EventId,
		Kind:       EventKind(oe.Kind),
		IdentityId: oe.IdentityId,
		EmittedAt:  timeutil.FromUnix(oe.EmittedAt),
		Payload:    json.RawMessage(oe.Body),
	}
}
