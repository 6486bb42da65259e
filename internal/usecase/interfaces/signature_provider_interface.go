package interfaces

import (
	"context"
	"errors"
	"io"

	"github.com/francois2metz/siign/internal/domain/entities"
)

// ErrTransactionNotFound is returned when Docage does not know the
// transaction id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ClientDescriptor is the signer identity sent to Docage alongside the
// transaction. Field names follow the provider wire format.
type ClientDescriptor struct {
	Email     string `json:"Email"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Address1  string `json:"Address1"`
	Address2  string `json:"Address2,omitempty"`
	City      string `json:"City"`
	ZipCode   string `json:"ZipCode"`
	Country   string `json:"Country"`
	Mobile    string `json:"Mobile"`
}

// ISignatureProvider abstracts the Docage transaction API.
//
// CreateFullTransaction submits the quote PDF plus one signer in a single
// multipart call; webhookURL is optional and empty means no callback.

type ISignatureProvider interface {
	CreateFullTransaction(ctx context.Context, name string, pdf io.Reader, client ClientDescriptor, isTest bool, webhookURL string) (entities.Transaction, error)
	GetTransaction(ctx context.Context, id string) (entities.Transaction, error)
	CancelTransaction(ctx context.Context, id string) error
}
