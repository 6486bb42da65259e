package response

import (
	"github.com/francois2metz/siign/internal/usecase"
)

// QuoteBoardEntry is one row of the quote board: a quote plus the id of its
// signature transaction when one was launched.
type QuoteBoardEntry struct {
	QuoteID       string `json:"quote_id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	ClientName    string `json:"client_name"`
	TransactionID string `json:"transaction_id,omitempty"`
}

func FromQuoteBoard(rows []usecase.QuoteWithTransaction) []QuoteBoardEntry {
	out := make([]QuoteBoardEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, QuoteBoardEntry{
			QuoteID:       r.Quote.ID,
			Title:         r.Quote.Title,
			Status:        string(r.Quote.Status),
			ClientName:    r.Quote.ClientName,
			TransactionID: r.TransactionID,
		})
	}
	return out
}
