// Package tiime is the HTTP client for the Tiime quotation API (chronos),
// the source of truth for quote records.
package tiime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

// DefaultBaseURL is the production chronos API.
const DefaultBaseURL = "https://chronos-api.tiime-apps.com/v1"

const requestTimeout = 30 * time.Second

// Client implements interfaces.IQuoteService. Every call obtains a bearer
// token from the broker first: token validity before data access.
//
// All quotation endpoints are scoped by company; the account's first company
// is resolved once and cached for the process lifetime, mirroring how the
// Tiime web app picks its default company.
type Client struct {
	baseURL  string
	user     string
	password string
	tokens   interfaces.ITokenBroker
	http     *http.Client

	mu        sync.Mutex
	companyID string
}

var _ interfaces.IQuoteService = (*Client)(nil)

func NewClient(baseURL string, tokens interfaces.ITokenBroker, user, password string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		user:     user,
		password: password,
		tokens:   tokens,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

type quoteDTO struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Client struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"client"`
}

func (d quoteDTO) toEntity() entities.Quote {
	return entities.Quote{
		ID:         d.ID,
		Title:      d.Title,
		Status:     entities.QuoteStatus(d.Status),
		ClientID:   d.Client.ID,
		ClientName: d.Client.Name,
	}
}

func (c *Client) FindQuote(ctx context.Context, id string) (entities.Quote, error) {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	var dto quoteDTO
	err = c.getJSON(ctx, fmt.Sprintf("/companies/%s/quotations/%s", companyID, id), &dto)
	if err != nil {
		return entities.Quote{}, mapQuoteError(err)
	}
	return dto.toEntity(), nil
}

func (c *Client) AllQuotes(ctx context.Context) ([]entities.Quote, error) {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	var dtos []quoteDTO
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%s/quotations", companyID), &dtos); err != nil {
		return nil, err
	}
	quotes := make([]entities.Quote, 0, len(dtos))
	for _, d := range dtos {
		quotes = append(quotes, d.toEntity())
	}
	return quotes, nil
}

func (c *Client) QuotePDF(ctx context.Context, id string) ([]byte, error) {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/companies/%s/quotations/%s/pdf", companyID, id), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, interfaces.ErrQuoteNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tiime pdf returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) UpdateQuote(ctx context.Context, quote entities.Quote) error {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return err
	}

	var dto quoteDTO
	dto.ID = quote.ID
	dto.Title = quote.Title
	dto.Status = string(quote.Status)
	dto.Client.ID = quote.ClientID
	dto.Client.Name = quote.ClientName

	payload, err := json.Marshal(dto)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/companies/%s/quotations/%s", companyID, quote.ID), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return interfaces.ErrQuoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("tiime quote update returned status %d", resp.StatusCode)
	}
	log.Printf("[tiime][client] quote %s updated to status %s", quote.ID, quote.Status)
	return nil
}

func (c *Client) FindCustomer(ctx context.Context, id string) (entities.Customer, error) {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return entities.Customer{}, err
	}

	var customer entities.Customer
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%s/customers/%s", companyID, id), &customer); err != nil {
		return entities.Customer{}, err
	}
	return customer, nil
}

func (c *Client) AllContacts(ctx context.Context, customerID string) ([]entities.Contact, error) {
	companyID, err := c.defaultCompanyID(ctx)
	if err != nil {
		return nil, err
	}

	var contacts []entities.Contact
	if err := c.getJSON(ctx, fmt.Sprintf("/companies/%s/customers/%s/contacts", companyID, customerID), &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (c *Client) AllCompanies(ctx context.Context) ([]entities.Company, error) {
	var companies []entities.Company
	if err := c.getJSON(ctx, "/companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func (c *Client) defaultCompanyID(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.companyID
	c.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	companies, err := c.AllCompanies(ctx)
	if err != nil {
		return "", err
	}
	if len(companies) == 0 {
		return "", fmt.Errorf("tiime account has no company")
	}

	c.mu.Lock()
	c.companyID = companies[0].ID
	c.mu.Unlock()
	return companies[0].ID, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	token, err := c.tokens.GetOrFetchToken(ctx, c.user, c.password)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tiime returned status %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var errNotFound = fmt.Errorf("tiime resource not found")

func mapQuoteError(err error) error {
	if err == errNotFound {
		return interfaces.ErrQuoteNotFound
	}
	return err
}
