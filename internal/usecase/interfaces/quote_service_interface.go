package interfaces

import (
	"context"
	"errors"

	"github.com/francois2metz/siign/internal/domain/entities"
)

// ErrQuoteNotFound is returned by quote lookups when Tiime does not know the
// id.
var ErrQuoteNotFound = errors.New("quote not found")

// IQuoteService abstracts the Tiime quotation API, the source of truth for
// quote records. Every call authenticates through the token broker; quote
// state is only ever mutated through UpdateQuote.

type IQuoteService interface {
	FindQuote(ctx context.Context, id string) (entities.Quote, error)
	AllQuotes(ctx context.Context) ([]entities.Quote, error)
	QuotePDF(ctx context.Context, id string) ([]byte, error)
	UpdateQuote(ctx context.Context, quote entities.Quote) error
	FindCustomer(ctx context.Context, id string) (entities.Customer, error)
	AllContacts(ctx context.Context, customerID string) ([]entities.Contact, error)
	AllCompanies(ctx context.Context) ([]entities.Company, error)
}
