package events

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes one JSON message per posted transaction, keyed by transaction id.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

var _ portssvc.EventPublisher = (*KafkaPublisher)(nil)

func (p *KafkaPublisher) PublishTransactionPosted(ctx context.Context, event domain.TransactionPosted) error {
	body, err := encode(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(TransactionPostedType)},
		},
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
