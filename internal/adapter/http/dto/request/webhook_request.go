package request

// WebhookRequest is the JSON body Docage posts on a transaction status
// change. Field names follow the provider wire format.
type WebhookRequest struct {
	ID     string `json:"Id" binding:"required"`
	Status int    `json:"Status"`
	Name   string `json:"Name"`
}
