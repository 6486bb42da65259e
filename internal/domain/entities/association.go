package entities

import "time"

// Association is the persisted one-to-one link between a quote and its active
// signature transaction.
//
// Storage model:
//   - PK: quote_id — a quote has at most one active transaction, enforced by
//     the store itself, not by application checks.
//   - transaction_id is not unique; resolving a transaction back to its quote
//     is a scan.
//   - CreatedAt keeps listings in insertion order.
type Association struct {
	QuoteID       string    `json:"quote_id"`
	TransactionID string    `json:"transaction_id"`
	CreatedAt     time.Time `json:"created_at"`
}
