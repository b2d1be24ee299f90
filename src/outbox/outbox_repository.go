package outbox

import (
	"identity-market/src/database"
	"identity-market/src/model"

	"gorm.io/gorm"
)

const maxRetries = 5

type OutboxRepository interface {
	NewEvent(event model.IdentityEvent) error
	GetUnprocessedEvents() ([]model.OutboxEvent, error)
	MarkEventAsProcessed(eventId string) error
	UpdateRetryValue(eventId string) error
}

type outboxRepository struct {
	db *gorm.DB
}

func NewRepo() OutboxRepository {
	return &outboxRepository{db: database.GetDatabaseConnection()}
}

func NewRepoWithDb(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (or *outboxRepository) NewEvent(event model.IdentityEvent) error {
	return or.db.Create(&model.OutboxEvent{
		EventId:    event.EventId,
		IdentityId: event.IdentityId,
		Kind:       string(event.Kind),
		EmittedAt:  event.EmittedAt.T,
		Body:       string(event.Payload),
		Retry:      0,
		Processed:  false,
	}).Error
}

func (or *outboxRepository) GetUnprocessedEvents() ([]model.OutboxEvent, error) {
	var events []model.OutboxEvent
	result := or.db.Where("processed = ?", false).Order("id asc").Find(&events)
	return events, result.Error
}

func (or *outboxRepository) MarkEventAsProcessed(eventId string) error {
	return or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId).
		Update("processed", true).Error
}

// UpdateRetryValue counts one failed delivery. Events that exhaust
// their retries are parked as processed so the drain does not spin on
// them; they remain in the table for manual inspection.
func (or *outboxRepository) UpdateRetryValue(eventId string) error {
	var event model.OutboxEvent
	if err := or.db.First(&event, "event_id = ?", eventId).Error; err != nil {
		return err
	}

	if err := or.db.Model(&model.OutboxEvent{}).
		Where("event_id = ?", eventId).
		Update("retry", event.Retry+1).Error; err != nil {
		return err
	}

	if event.Retry+1 >= maxRetries {
		return or.MarkEventAsProcessed(eventId)
	}
	return nil
}
