package entities

// QuoteStatus represents the lifecycle of a quotation (devis) on the Tiime
// platform.
//
// Domain notes:
//   - Tiime is the source of truth for quote state; siign only mutates the
//     status field through the Tiime update API, never directly.
//   - "saved" is the only state from which a signature transaction may be
//     launched or cancelled.

type QuoteStatus string

const (
	QuoteStatusSaved     QuoteStatus = "saved"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRefused   QuoteStatus = "refused"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a quotation record owned by the Tiime API, referenced not owned.
type Quote struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Status     QuoteStatus `json:"status"`
	ClientID   string      `json:"client_id"`
	ClientName string      `json:"client_name"`
}

// Signable reports whether a signature transaction may be created for the
// quote. Launch and cancel share the same gate.
func (q Quote) Signable() bool {
	return q.Status == QuoteStatusSaved
}

// Customer is the Tiime customer attached to a quote.
type Customer struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Address           string `json:"address"`
	AddressComplement string `json:"address_complement"`
	City              string `json:"city"`
	PostalCode        string `json:"postal_code"`
	Country           string `json:"country"`
	Phone             string `json:"phone"`
}

// Contact is a person attached to a Tiime customer. The first contact is used
// as the signer identity.
type Contact struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Company is a Tiime company. The first company of the account scopes every
// quotation call.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
