package response

// TransactionResponse is returned after a successful launch.
type TransactionResponse struct {
	QuoteID       string `json:"quote_id"`
	TransactionID string `json:"transaction_id"`
}
