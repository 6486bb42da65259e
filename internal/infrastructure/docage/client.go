// Package docage is the HTTP client for the Docage e-signature API.
package docage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

// DefaultBaseURL is the production Docage API.
const DefaultBaseURL = "https://api.docage.com"

const requestTimeout = 60 * time.Second

// Client implements interfaces.ISignatureProvider using the Docage REST API
// with basic auth (account email + API key).
type Client struct {
	baseURL string
	user    string
	apiKey  string
	http    *http.Client
}

var _ interfaces.ISignatureProvider = (*Client)(nil)

func NewClient(baseURL, user, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		user:    user,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type transactionFile struct {
	Filename     string `json:"Filename"`
	FriendlyName string `json:"FriendlyName"`
}

type transactionMember struct {
	NotifyInvitation bool   `json:"NotifyInvitation"`
	NotifySignature  bool   `json:"NotifySignature"`
	NotifyRefusal    bool   `json:"NotifyRefusal"`
	NotifyCompletion bool   `json:"NotifyCompletion"`
	FriendlyName     string `json:"FriendlyName"`
}

type transactionPayload struct {
	Name               string              `json:"Name"`
	IsTest             bool                `json:"IsTest"`
	TransactionFiles   []transactionFile   `json:"TransactionFiles"`
	TransactionMembers []transactionMember `json:"TransactionMembers"`
	Webhook            string              `json:"Webhook,omitempty"`
}

// CreateFullTransaction submits the transaction metadata, the signer and the
// quote PDF in a single multipart request. The single member has every
// provider-side notification disabled: the signer is driven from siign, not
// by Docage mails.
func (c *Client) CreateFullTransaction(ctx context.Context, name string, pdf io.Reader, client interfaces.ClientDescriptor, isTest bool, webhookURL string) (entities.Transaction, error) {
	transaction, err := json.Marshal(transactionPayload{
		Name:   name,
		IsTest: isTest,
		TransactionFiles: []transactionFile{
			{Filename: "devis.pdf", FriendlyName: "Devis"},
		},
		TransactionMembers: []transactionMember{
			{FriendlyName: "Client"},
		},
		Webhook: webhookURL,
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	clientJSON, err := json.Marshal(client)
	if err != nil {
		return entities.Transaction{}, err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("Transaction", string(transaction)); err != nil {
		return entities.Transaction{}, err
	}
	if err := form.WriteField("Client", string(clientJSON)); err != nil {
		return entities.Transaction{}, err
	}
	part, err := form.CreatePart(pdfPartHeader("Devis", "devis.pdf"))
	if err != nil {
		return entities.Transaction{}, err
	}
	if _, err := io.Copy(part, pdf); err != nil {
		return entities.Transaction{}, err
	}
	if err := form.Close(); err != nil {
		return entities.Transaction{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/Transactions/CreateFullTransaction", &body)
	if err != nil {
		return entities.Transaction{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Transaction{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.Transaction{}, fmt.Errorf("docage create transaction returned status %d", resp.StatusCode)
	}

	var tx entities.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return entities.Transaction{}, err
	}
	log.Printf("[docage][client] transaction %s created (test=%t)", tx.ID, isTest)
	return tx, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (entities.Transaction, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/Transactions/ById/"+id, nil)
	if err != nil {
		return entities.Transaction{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return entities.Transaction{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Transaction{}, interfaces.ErrTransactionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Transaction{}, fmt.Errorf("docage get transaction returned status %d", resp.StatusCode)
	}

	var tx entities.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&tx); err != nil {
		return entities.Transaction{}, err
	}
	return tx, nil
}

func (c *Client) CancelTransaction(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/Transactions/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.ErrTransactionNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("docage cancel transaction returned status %d", resp.StatusCode)
	}
	log.Printf("[docage][client] transaction %s cancelled", id)
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.user, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func pdfPartHeader(field, filename string) textproto.MIMEHeader {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	h.Set("Content-Type", "application/pdf")
	return h
}
