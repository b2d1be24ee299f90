package outbox

import (
	"identity-market/pkg/logger"
	"identity-market/pkg/rabbitmq"

	"github.com/robfig/cron"
)

const (
	outboxWorkerName     = "OutboxCronWorker"
	LedgerEventPublisher = rabbitmq.PublisherAlias("LedgerEventsPublisher")
)

type OutboxWorker struct {
	publisher  rabbitmq.IRabbitmqPublisher
	repository OutboxRepository
	cron       *cron.Cron
}

func NewOutboxWorker() rabbitmq.WorkerService {
	return &OutboxWorker{
		publisher:  rabbitmq.GetPublisher(LedgerEventPublisher),
		repository: NewRepo(),
		cron:       cron.New(),
	}
}

func (ow *OutboxWorker) GetServiceName() string {
	return outboxWorkerName
}

func (ow *OutboxWorker) StartService() {
	err := ow.cron.AddFunc("@every 10s", func() { ow.drainOutbox() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", outboxWorkerName)
	}

	ow.cron.Start()
}

func (ow *OutboxWorker) drainOutbox() {
	outboxLogger := logger.Default()

	events, err := ow.repository.GetUnprocessedEvents()
	if err != nil {
		outboxLogger.Error(err, "Could not read outbox events from database")
		return
	}

	for _, e := range events {
		if err := ow.publisher.Publish(e.MapToIdentityEvent()); err != nil {
			outboxLogger.Errorf(err, "Can't publish event %s to queue", e.EventId)
			if retryErr := ow.repository.UpdateRetryValue(e.EventId); retryErr != nil {
				outboxLogger.Errorf(retryErr, "Can't update retry counter for event %s", e.EventId)
			}
			continue
		}

		if err := ow.repository.MarkEventAsProcessed(e.EventId); err != nil {
			outboxLogger.Errorf(err, "Can't mark event %s as processed", e.EventId)
		}
	}
}
