package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

// QuoteNotificationUseCase builds the operator-facing message for a quote's
// transaction outcome and hands it to the notification sink.
//
// Only the four terminal statuses produce a message; everything else is
// silent. Delivery failures are logged and swallowed: notification is best
// effort and must never fail the webhook.

type QuoteNotificationUseCase struct {
	notifier interfaces.INotifier
}

var _ interfaces.IQuoteNotifier = (*QuoteNotificationUseCase)(nil)

func NewQuoteNotificationUseCase(notifier interfaces.INotifier) *QuoteNotificationUseCase {
	return &QuoteNotificationUseCase{notifier: notifier}
}

func (u *QuoteNotificationUseCase) NotifyQuoteStatus(ctx context.Context, status entities.TransactionStatus, quoteTitle, clientName string) {
	msg := notificationMessage(status, quoteTitle, clientName)
	if msg == "" || u.notifier == nil {
		return
	}
	if err := u.notifier.Notify(ctx, msg); err != nil {
		log.Printf("[notification][usecase] delivery failed status=%s quote=%q err=%v", status, quoteTitle, err)
	}
}

func notificationMessage(status entities.TransactionStatus, quoteTitle, clientName string) string {
	switch status {
	case entities.TransactionStatusSigned:
		return fmt.Sprintf("Bonne nouvelle, devis %s pour %s signé !", quoteTitle, clientName)
	case entities.TransactionStatusRefused:
		return fmt.Sprintf("Mauvaise nouvelle, devis %s pour %s refusé !", quoteTitle, clientName)
	case entities.TransactionStatusExpired:
		return fmt.Sprintf("Sale nouvelle, devis %s pour %s expiré !", quoteTitle, clientName)
	case entities.TransactionStatusAborted:
		return fmt.Sprintf("Sale nouvelle, devis %s pour %s annulé !", quoteTitle, clientName)
	case entities.TransactionStatusDraft, entities.TransactionStatusScheduled,
		entities.TransactionStatusWaitingInformation, entities.TransactionStatusActive,
		entities.TransactionStatusValidated:
		return ""
	}
	return ""
}
