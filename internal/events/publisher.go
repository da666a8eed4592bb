// Package events delivers posted-transaction notifications to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
	portssvc "github.com/devdecrux/pocketr_api/internal/core/ports/services"
	"github.com/devdecrux/pocketr_api/internal/platform/config"
)

// New builds the publisher selected by cfg.EventsDriver.
func New(cfg *config.Config, logger *slog.Logger) (portssvc.EventPublisher, error) {
	switch cfg.EventsDriver {
	case config.EventsDriverKafka:
		if len(cfg.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("KAFKA_BROKERS must be set for the kafka events driver")
		}
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil
	case config.EventsDriverAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
	default:
		return NewLogPublisher(logger), nil
	}
}

func encode(event domain.TransactionPosted) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal transaction posted event: %w", err)
	}
	return body, nil
}

// LogPublisher only logs events. It is the default when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

var _ portssvc.EventPublisher = (*LogPublisher)(nil)

func (p *LogPublisher) PublishTransactionPosted(ctx context.Context, event domain.TransactionPosted) error {
	p.logger.DebugContext(ctx, "Transaction posted",
		slog.String("transaction_id", event.TransactionID),
		slog.String("created_by", event.CreatedBy),
		slog.Int("splits", len(event.Splits)))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
