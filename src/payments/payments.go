package payments

import (
	"identity-market/pkg/rabbitmq"
	"identity-market/pkg/utilities"
	"identity-market/src/model"

	"github.com/google/uuid"
)

const SettlementPublisher = rabbitmq.PublisherAlias("SettlementPublisher")

// PayoutInstruction tells the settlement side to move sale proceeds to
// the seller's wallet.
type PayoutInstruction struct {
	InstructionId string        `json:"instruction_id"`
	To            model.Account `json:"to"`
	Amount        uint64        `json:"amount"`
}

func (pi PayoutInstruction) Serialize() ([]byte, error) {
	return utilities.Serialize(pi)
}

// QueuePaymentSender implements the engine's payment interface by
// publishing payout instructions to the settlement queue. Publishing is
// synchronous: a broker refusal propagates back and aborts the sale.
type QueuePaymentSender struct {
	publisher rabbitmq.IRabbitmqPublisher
}

func NewQueuePaymentSender(publisher rabbitmq.IRabbitmqPublisher) *QueuePaymentSender {
	return &QueuePaymentSender{publisher: publisher}
}

func (qps *QueuePaymentSender) Send(to model.Account, amount uint64) error {
	return qps.publisher.Publish(PayoutInstruction{
		InstructionId: uuid.New().String(),
		To:            to,
		Amount:        amount,
	})
}
