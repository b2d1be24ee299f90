package indexer

import (
	"encoding/json"

	"identity-market/pkg/logger"
	"identity-market/pkg/rabbitmq"
	"identity-market/src/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	indexerWorkerName    = "IndexerWorker"
	LedgerEventsConsumer = rabbitmq.ConsumerAlias("LedgerEventsConsumer")
)

// IndexerWorker rebuilds the read-model from the event stream. It is
// the only writer of the view tables.
type IndexerWorker struct {
	consumer   rabbitmq.IRabbitmqConsumer
	projection *Projection
}

func NewIndexerWorker() rabbitmq.WorkerService {
	return &IndexerWorker{
		consumer:   rabbitmq.GetConsumer(LedgerEventsConsumer),
		projection: NewProjection(NewViewRepository()),
	}
}

func (iw *IndexerWorker) GetServiceName() string {
	return indexerWorkerName
}

func (iw *IndexerWorker) StartService() {
	indexerLogger := logger.Default()

	iw.consumer.StartConsuming(func(d amqp.Delivery) {
		var event model.IdentityEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			indexerLogger.Error(err, "Could not unmarshal ledger event")
			return
		}

		if err := iw.projection.Apply(event); err != nil {
			indexerLogger.Errorf(err, "Could not project event %s (%s)", event.EventId, event.Kind)
		}
	})
}
