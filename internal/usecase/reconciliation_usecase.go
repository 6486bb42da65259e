package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

var (
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")
	ErrAssociationNotFound  = errors.New("no quote associated with this transaction")
)

// WebhookEvent is the payload Docage posts on a transaction status change.
type WebhookEvent struct {
	TransactionID string
	StatusCode    int
	Name          string
}

// IReconciliationUseCase drives quote status from inbound Docage webhooks.
//
// The handler is idempotent: replaying the same event produces the same quote
// state and repeats the notification. Unknown status codes are a no-op so
// that provider retries of a newer, unmapped status never break.

type IReconciliationUseCase interface {
	HandleWebhook(ctx context.Context, secret string, event WebhookEvent) error
}

type ReconciliationUseCase struct {
	ledger        interfaces.IAssociationLedger
	quotes        interfaces.IQuoteService
	provider      interfaces.ISignatureProvider
	notifier      interfaces.IQuoteNotifier
	webhookSecret string
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	ledger interfaces.IAssociationLedger,
	quotes interfaces.IQuoteService,
	provider interfaces.ISignatureProvider,
	notifier interfaces.IQuoteNotifier,
	webhookSecret string,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		ledger:        ledger,
		quotes:        quotes,
		provider:      provider,
		notifier:      notifier,
		webhookSecret: webhookSecret,
	}
}

func (u *ReconciliationUseCase) HandleWebhook(ctx context.Context, secret string, event WebhookEvent) error {
	// The secret gate runs before any other work, provider calls included.
	if u.webhookSecret == "" || secret != u.webhookSecret {
		log.Printf("[webhook][usecase] rejected: secret mismatch transaction_id=%s", event.TransactionID)
		return ErrInvalidWebhookSecret
	}

	// Fetching the transaction also proves the id is legitimate and not a
	// guess that merely looks like one of ours.
	tx, err := u.provider.GetTransaction(ctx, event.TransactionID)
	if err != nil {
		log.Printf("[webhook][usecase] transaction lookup failed transaction_id=%s err=%v", event.TransactionID, err)
		return err
	}

	quoteID, err := u.ledger.QuoteForTransaction(ctx, event.TransactionID)
	if err != nil {
		return err
	}
	if quoteID == "" {
		// Never launched through siign, or already cancelled: nothing to
		// reconcile.
		log.Printf("[webhook][usecase] no association for transaction_id=%s", event.TransactionID)
		return ErrAssociationNotFound
	}

	quote, err := u.quotes.FindQuote(ctx, quoteID)
	if err != nil {
		log.Printf("[webhook][usecase] quote load failed quote_id=%s err=%v", quoteID, err)
		return err
	}

	status, err := entities.TransactionStatusFromCode(event.StatusCode)
	if err != nil {
		log.Printf("[webhook][usecase] ignoring unknown status code=%d transaction_id=%s", event.StatusCode, event.TransactionID)
		return nil
	}

	if quoteStatus, ok := status.QuoteStatus(); ok {
		quote.Status = quoteStatus
		if err := u.quotes.UpdateQuote(ctx, quote); err != nil {
			log.Printf("[webhook][usecase] quote update failed quote_id=%s status=%s err=%v", quote.ID, quoteStatus, err)
			return err
		}
		log.Printf("[webhook][usecase] quote_id=%s set to %s (transaction %s)", quote.ID, quoteStatus, status)
	}

	u.notifier.NotifyQuoteStatus(ctx, status, webhookQuoteTitle(event, tx, quote), quote.ClientName)
	return nil
}

// webhookQuoteTitle prefers the name carried by the event, then the
// transaction record, then the quote itself.
func webhookQuoteTitle(event WebhookEvent, tx entities.Transaction, quote entities.Quote) string {
	if event.Name != "" {
		return event.Name
	}
	if tx.Name != "" {
		return tx.Name
	}
	return quote.Title
}
