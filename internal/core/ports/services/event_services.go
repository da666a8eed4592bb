package services

import (
	"context"

	"github.com/devdecrux/pocketr_api/internal/core/domain"
)

// EventPublisher emits ledger events to downstream consumers.
type EventPublisher interface {
	PublishTransactionPosted(ctx context.Context, event domain.TransactionPosted) error
	Close() error
}
