package interfaces

import (
	"context"
	"errors"

	"github.com/francois2metz/siign/internal/domain/entities"
)

// ErrAssociationExists is returned by Associate when the quote already has a
// transaction. The existing row is left untouched.
var ErrAssociationExists = errors.New("quote already associated with a transaction")

// IAssociationLedger abstracts durable persistence for the quote/transaction
// association.
//
// Implementations must enforce quote_id uniqueness at the store level (e.g. a
// conditional put or a primary key), not with a read-then-write check: the
// constraint is the only thing preventing a double launch for the same quote
// under concurrent requests.
//
// Lookups return the zero value and a nil error when no row matches.

type IAssociationLedger interface {
	Associate(ctx context.Context, quoteID, transactionID string) (entities.Association, error)
	TransactionForQuote(ctx context.Context, quoteID string) (string, error)
	QuoteForTransaction(ctx context.Context, transactionID string) (string, error)
	Remove(ctx context.Context, quoteID string) error
	ListAll(ctx context.Context) ([]entities.Association, error)
}
