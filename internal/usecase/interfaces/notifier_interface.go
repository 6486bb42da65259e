package interfaces

import (
	"context"

	"github.com/francois2metz/siign/internal/domain/entities"
)

// INotifier delivers a plain-text message to the configured notification
// sink. Delivery is best effort: implementations may fail, callers decide
// whether to surface it.

type INotifier interface {
	Notify(ctx context.Context, msg string) error
}

// IQuoteNotifier builds and dispatches the human-readable message for a
// transaction status change. Non-terminal statuses produce no message and no
// network call; delivery failures are swallowed, notification must never fail
// the webhook.

type IQuoteNotifier interface {
	NotifyQuoteStatus(ctx context.Context, status entities.TransactionStatus, quoteTitle, clientName string)
}
