package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces/mocks"
)

func TestNotifyQuoteStatusTerminal(t *testing.T) {
	cases := []struct {
		status  entities.TransactionStatus
		message string
	}{
		{entities.TransactionStatusSigned, "Bonne nouvelle, devis Q1 pour ACME signé !"},
		{entities.TransactionStatusRefused, "Mauvaise nouvelle, devis Q1 pour ACME refusé !"},
		{entities.TransactionStatusExpired, "Sale nouvelle, devis Q1 pour ACME expiré !"},
		{entities.TransactionStatusAborted, "Sale nouvelle, devis Q1 pour ACME annulé !"},
	}

	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := mocks.NewMockINotifier(ctrl)
			notifier.EXPECT().Notify(gomock.Any(), tc.message).Return(nil)

			NewQuoteNotificationUseCase(notifier).NotifyQuoteStatus(context.Background(), tc.status, "Q1", "ACME")
		})
	}
}

func TestNotifyQuoteStatusNonTerminalIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockINotifier(ctrl)
	u := NewQuoteNotificationUseCase(notifier)

	for code := 0; code <= 4; code++ {
		u.NotifyQuoteStatus(context.Background(), entities.TransactionStatus(code), "Q1", "ACME")
	}
}

func TestNotifyQuoteStatusSwallowsDeliveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockINotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("sink down"))

	// Must not panic or surface the error.
	NewQuoteNotificationUseCase(notifier).NotifyQuoteStatus(context.Background(), entities.TransactionStatusSigned, "Q1", "ACME")
}
