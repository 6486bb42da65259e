// Package auth implements the bearer-token broker for the Tiime identity
// provider (an Auth0 tenant).
//
// The provider does not expose a plain password grant for this client; the
// exchange is two-legged:
//  1. POST /co/authenticate with the credentials to obtain a short-lived
//     login ticket (requires the web origin header and the cross-origin
//     cookie it sets).
//  2. GET /authorize with that ticket; the provider answers with a redirect
//     whose URL fragment carries the access token.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production Tiime identity provider.
const DefaultBaseURL = "https://auth0.tiime.fr"

const (
	clientID       = "iEbsbe3o66gcTBfGRa012kj1Rb6vjAND"
	realm          = "Chronos-prod-db"
	credentialType = "http://auth0.com/oauth/grant-type/password-realm"
	webOrigin      = "https://apps.tiime.fr"
	audience       = "https://chronos/"

	requestTimeout = 30 * time.Second
)

// ErrAuthenticationFailed is returned when neither the cached token nor a
// fresh exchange yields a usable bearer token.
var ErrAuthenticationFailed = errors.New("tiime authentication failed")

// errTokenRejected marks a probe failure that proves the cached token is
// invalid (provider answered 4xx). Any other probe failure must not evict a
// possibly valid token.
var errTokenRejected = errors.New("cached token rejected by identity provider")

// TokenBroker caches a single bearer token for one credential pair and
// refreshes it lazily when the validity probe fails.
//
// The token only ever lives in process memory. The mutex serializes
// probe/refresh cycles; under concurrent invalidation the last writer wins,
// which at worst costs one redundant exchange.
type TokenBroker struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	token string
}

func NewTokenBroker(baseURL string) *TokenBroker {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// The login ticket is bound to a cookie set by the first leg, so the two
	// legs must share a jar. The authorize leg must not follow the redirect:
	// the token is in the Location fragment.
	jar, _ := cookiejar.New(nil)
	return &TokenBroker{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// GetOrFetchToken returns the cached bearer token when the identity provider
// still accepts it, otherwise authenticates and caches a fresh one.
func (b *TokenBroker) GetOrFetchToken(ctx context.Context, user, password string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.token != "" {
		err := b.probe(ctx, b.token)
		switch {
		case err == nil:
			return b.token, nil
		case errors.Is(err, errTokenRejected):
			log.Printf("[auth][broker] cached token rejected, re-authenticating")
			b.token = ""
		default:
			return "", fmt.Errorf("%w: validity probe: %v", ErrAuthenticationFailed, err)
		}
	}

	token, err := b.authenticate(ctx, user, password)
	if err != nil {
		return "", err
	}
	b.token = token
	log.Printf("[auth][broker] token refreshed")
	return token, nil
}

// probe asks the identity provider who the token belongs to. A 2xx answer
// means the token is still valid; a 4xx answer proves it is not.
func (b *TokenBroker) probe(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/userinfo", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: status %d", errTokenRejected, resp.StatusCode)
	default:
		return fmt.Errorf("identity probe returned status %d", resp.StatusCode)
	}
}

func (b *TokenBroker) authenticate(ctx context.Context, user, password string) (string, error) {
	ticket, err := b.loginTicket(ctx, user, password)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	token, err := b.authorize(ctx, user, ticket)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}
	return token, nil
}

func (b *TokenBroker) loginTicket(ctx context.Context, user, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":       clientID,
		"username":        user,
		"password":        password,
		"realm":           realm,
		"credential_type": credentialType,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/co/authenticate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", webOrigin)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("credential exchange returned status %d", resp.StatusCode)
	}

	var body struct {
		LoginTicket string `json:"login_ticket"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.LoginTicket == "" {
		return "", errors.New("credential exchange returned no login ticket")
	}
	return body.LoginTicket, nil
}

func (b *TokenBroker) authorize(ctx context.Context, user, ticket string) (string, error) {
	q := url.Values{}
	q.Set("client_id", clientID)
	q.Set("response_type", "token id_token")
	q.Set("redirect_uri", webOrigin+"/auth-callback?ctx-email="+user+"&login_initiator=user")
	q.Set("scope", "openid email")
	q.Set("audience", audience)
	q.Set("realm", realm)
	q.Set("login_ticket", ticket)
	q.Set("nonce", uuid.NewString())
	q.Set("state", uuid.NewString())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/authorize?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("authorize endpoint returned status %d", resp.StatusCode)
	}

	location, err := url.Parse(resp.Header.Get("Location"))
	if err != nil {
		return "", fmt.Errorf("authorize redirect location: %v", err)
	}
	fragment, err := url.ParseQuery(location.Fragment)
	if err != nil {
		return "", fmt.Errorf("authorize redirect fragment: %v", err)
	}
	token := fragment.Get("access_token")
	if token == "" {
		return "", errors.New("authorize redirect carried no access token")
	}
	return token, nil
}
