package entities

import "errors"

// ErrUnknownTransactionStatus is returned for provider status codes outside
// the documented 0-8 range.
var ErrUnknownTransactionStatus = errors.New("unknown transaction status code")

// TransactionStatus is the lifecycle state of a Docage signature transaction.
//
// Docage reports the state as an integer code. The enumeration is closed:
// codes 0-8, in this order, are the only valid values and the numeric value
// of each constant is the provider code itself.

type TransactionStatus int

const (
	TransactionStatusDraft TransactionStatus = iota
	TransactionStatusScheduled
	TransactionStatusWaitingInformation
	TransactionStatusActive
	TransactionStatusValidated
	TransactionStatusSigned
	TransactionStatusExpired
	TransactionStatusRefused
	TransactionStatusAborted
)

var transactionStatusNames = [...]string{
	TransactionStatusDraft:              "draft",
	TransactionStatusScheduled:          "scheduled",
	TransactionStatusWaitingInformation: "waiting_information",
	TransactionStatusActive:             "active",
	TransactionStatusValidated:          "validated",
	TransactionStatusSigned:             "signed",
	TransactionStatusExpired:            "expired",
	TransactionStatusRefused:            "refused",
	TransactionStatusAborted:            "aborted",
}

// TransactionStatusFromCode maps a Docage status code onto the enumeration.
func TransactionStatusFromCode(code int) (TransactionStatus, error) {
	if code < int(TransactionStatusDraft) || code > int(TransactionStatusAborted) {
		return 0, ErrUnknownTransactionStatus
	}
	return TransactionStatus(code), nil
}

func (s TransactionStatus) String() string {
	if s < 0 || int(s) >= len(transactionStatusNames) {
		return "unknown"
	}
	return transactionStatusNames[s]
}

// Terminal reports whether no further transition is expected from s.
func (s TransactionStatus) Terminal() bool {
	switch s {
	case TransactionStatusSigned, TransactionStatusExpired, TransactionStatusRefused, TransactionStatusAborted:
		return true
	case TransactionStatusDraft, TransactionStatusScheduled, TransactionStatusWaitingInformation,
		TransactionStatusActive, TransactionStatusValidated:
		return false
	}
	return false
}

// QuoteStatus returns the quotation status a terminal transaction status maps
// onto. The second return value is false for every status that must leave the
// quote untouched.
func (s TransactionStatus) QuoteStatus() (QuoteStatus, bool) {
	switch s {
	case TransactionStatusSigned:
		return QuoteStatusAccepted, true
	case TransactionStatusRefused:
		return QuoteStatusRefused, true
	case TransactionStatusExpired, TransactionStatusAborted:
		return QuoteStatusCancelled, true
	case TransactionStatusDraft, TransactionStatusScheduled, TransactionStatusWaitingInformation,
		TransactionStatusActive, TransactionStatusValidated:
		return "", false
	}
	return "", false
}

// Transaction is the Docage signature transaction as seen by siign.
type Transaction struct {
	ID              string          `json:"Id"`
	Name            string          `json:"Name"`
	Status          int             `json:"Status"`
	MemberSummaries []MemberSummary `json:"MemberSummaries"`
}

// MemberSummary identifies one signer of a transaction.
type MemberSummary struct {
	ID string `json:"Id"`
}
