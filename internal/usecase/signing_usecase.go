package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

var (
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrQuoteNotSignable = errors.New("quote status does not allow a signature transaction")
)

// QuoteWithTransaction is one row of the quote board: a Tiime quote and the
// id of its signature transaction, empty when none was launched.
type QuoteWithTransaction struct {
	Quote         entities.Quote
	TransactionID string
}

// ISigningUseCase exposes the outbound signature flow.
//
//   - Launch pushes a quote PDF into Docage and records the association.
//   - Cancel aborts the transaction at Docage and removes the association.
//   - ListQuotes joins the Tiime quote list with the ledger.

type ISigningUseCase interface {
	Launch(ctx context.Context, quoteID, webhookURL string, isTest bool) (string, error)
	Cancel(ctx context.Context, quoteID string) error
	ListQuotes(ctx context.Context) ([]QuoteWithTransaction, error)
}

type SigningUseCase struct {
	ledger   interfaces.IAssociationLedger
	quotes   interfaces.IQuoteService
	provider interfaces.ISignatureProvider
}

var _ ISigningUseCase = (*SigningUseCase)(nil)

func NewSigningUseCase(ledger interfaces.IAssociationLedger, quotes interfaces.IQuoteService, provider interfaces.ISignatureProvider) *SigningUseCase {
	return &SigningUseCase{ledger: ledger, quotes: quotes, provider: provider}
}

func (u *SigningUseCase) Launch(ctx context.Context, quoteID, webhookURL string, isTest bool) (string, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return "", ErrInvalidQuoteID
	}

	quote, err := u.quotes.FindQuote(ctx, quoteID)
	if err != nil {
		return "", err
	}
	// Authorization gate, not data validation: only a saved quote may be
	// pushed for signature.
	if !quote.Signable() {
		log.Printf("[signing][usecase] launch refused quote_id=%s status=%s", quoteID, quote.Status)
		return "", ErrQuoteNotSignable
	}

	pdf, err := u.quotes.QuotePDF(ctx, quoteID)
	if err != nil {
		return "", err
	}
	customer, err := u.quotes.FindCustomer(ctx, quote.ClientID)
	if err != nil {
		return "", err
	}
	contacts, err := u.quotes.AllContacts(ctx, quote.ClientID)
	if err != nil {
		return "", err
	}

	tx, err := u.provider.CreateFullTransaction(ctx, quote.Title, bytes.NewReader(pdf), clientDescriptor(customer, contacts), isTest, webhookURL)
	if err != nil {
		log.Printf("[signing][usecase] transaction creation failed quote_id=%s err=%v", quoteID, err)
		return "", err
	}

	if _, err := u.ledger.Associate(ctx, quoteID, tx.ID); err != nil {
		// A duplicate association propagates unchanged; the existing row is
		// left untouched.
		log.Printf("[signing][usecase] association failed quote_id=%s transaction_id=%s err=%v", quoteID, tx.ID, err)
		return "", err
	}
	log.Printf("[signing][usecase] launched quote_id=%s transaction_id=%s test=%t", quoteID, tx.ID, isTest)
	return tx.ID, nil
}

func (u *SigningUseCase) Cancel(ctx context.Context, quoteID string) error {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return ErrInvalidQuoteID
	}

	quote, err := u.quotes.FindQuote(ctx, quoteID)
	if err != nil {
		return err
	}
	// Same gate as Launch: only the saved state is cancellable.
	if !quote.Signable() {
		return ErrQuoteNotSignable
	}

	transactionID, err := u.ledger.TransactionForQuote(ctx, quoteID)
	if err != nil {
		return err
	}
	if transactionID == "" {
		return ErrAssociationNotFound
	}

	if err := u.provider.CancelTransaction(ctx, transactionID); err != nil {
		return err
	}
	if err := u.ledger.Remove(ctx, quoteID); err != nil {
		return err
	}
	log.Printf("[signing][usecase] cancelled quote_id=%s transaction_id=%s", quoteID, transactionID)
	return nil
}

func (u *SigningUseCase) ListQuotes(ctx context.Context) ([]QuoteWithTransaction, error) {
	quotes, err := u.quotes.AllQuotes(ctx)
	if err != nil {
		return nil, err
	}
	associations, err := u.ledger.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byQuote := make(map[string]string, len(associations))
	for _, a := range associations {
		byQuote[a.QuoteID] = a.TransactionID
	}

	board := make([]QuoteWithTransaction, 0, len(quotes))
	for _, q := range quotes {
		board = append(board, QuoteWithTransaction{Quote: q, TransactionID: byQuote[q.ID]})
	}
	return board, nil
}

// clientDescriptor assembles the Docage signer from the quote's customer and
// its first contact. Missing contacts leave the name fields empty, Docage
// accepts a partial client.
func clientDescriptor(customer entities.Customer, contacts []entities.Contact) interfaces.ClientDescriptor {
	d := interfaces.ClientDescriptor{
		Email:    customer.Email,
		Address1: customer.Address,
		Address2: customer.AddressComplement,
		City:     customer.City,
		ZipCode:  customer.PostalCode,
		Country:  customer.Country,
		Mobile:   customer.Phone,
	}
	if len(contacts) > 0 {
		d.FirstName = contacts[0].Firstname
		d.LastName = contacts[0].Lastname
	}
	return d
}
