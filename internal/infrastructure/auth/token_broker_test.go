package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// identityStub fakes the two-leg Auth0 exchange plus the userinfo probe.
type identityStub struct {
	token       string
	probeStatus int32
	authCalls   int32
	probeCalls  int32
}

func (s *identityStub) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/co/authenticate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("authenticate: unexpected method %s", r.Method)
		}
		if origin := r.Header.Get("Origin"); origin != webOrigin {
			t.Errorf("authenticate: unexpected origin %q", origin)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("authenticate: bad payload: %v", err)
		}
		if body["client_id"] != clientID || body["realm"] != realm || body["credential_type"] != credentialType {
			t.Errorf("authenticate: unexpected payload %+v", body)
		}
		if body["username"] != "user@example.com" || body["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"login_ticket": "ticket-1"})
	})

	mux.HandleFunc("/authorize", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.authCalls, 1)
		q := r.URL.Query()
		if q.Get("login_ticket") != "ticket-1" {
			t.Errorf("authorize: unexpected login ticket %q", q.Get("login_ticket"))
		}
		if q.Get("nonce") == "" || q.Get("state") == "" {
			t.Error("authorize: missing nonce or state")
		}
		w.Header().Set("Location", webOrigin+"/auth-callback#access_token="+s.token+"&token_type=Bearer")
		w.WriteHeader(http.StatusFound)
	})

	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.probeCalls, 1)
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(int(atomic.LoadInt32(&s.probeStatus)))
	})

	return mux
}

func TestGetOrFetchTokenFirstExchange(t *testing.T) {
	stub := &identityStub{token: "tok-1", probeStatus: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	broker := NewTokenBroker(server.URL)
	token, err := broker.GetOrFetchToken(context.Background(), "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", token)
	}
	if stub.authCalls != 1 {
		t.Fatalf("expected 1 authorize call, got %d", stub.authCalls)
	}
}

func TestGetOrFetchTokenReusesValidCache(t *testing.T) {
	stub := &identityStub{token: "tok-1", probeStatus: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	broker := NewTokenBroker(server.URL)
	ctx := context.Background()
	if _, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	token, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected cached token tok-1, got %q", token)
	}
	if stub.authCalls != 1 {
		t.Fatalf("expected no second exchange, authorize called %d times", stub.authCalls)
	}
	if stub.probeCalls != 1 {
		t.Fatalf("expected exactly 1 probe, got %d", stub.probeCalls)
	}
}

func TestGetOrFetchTokenRefreshesRejectedCache(t *testing.T) {
	stub := &identityStub{token: "tok-1", probeStatus: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	broker := NewTokenBroker(server.URL)
	ctx := context.Background()
	if _, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Rotate the provider-side token so the probe of the cached one 401s.
	stub.token = "tok-2"
	token, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("refresh call: %v", err)
	}
	if token != "tok-2" {
		t.Fatalf("expected refreshed token tok-2, got %q", token)
	}
	if stub.authCalls != 2 {
		t.Fatalf("expected exactly one re-authentication, authorize called %d times", stub.authCalls)
	}
}

func TestGetOrFetchTokenKeepsCacheOnProbeOutage(t *testing.T) {
	stub := &identityStub{token: "tok-1", probeStatus: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	broker := NewTokenBroker(server.URL)
	ctx := context.Background()
	if _, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// A 5xx from the probe is inconclusive: fail the call, keep the cache.
	atomic.StoreInt32(&stub.probeStatus, http.StatusInternalServerError)
	if _, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
	if stub.authCalls != 1 {
		t.Fatalf("expected no re-authentication on outage, authorize called %d times", stub.authCalls)
	}

	atomic.StoreInt32(&stub.probeStatus, http.StatusOK)
	token, err := broker.GetOrFetchToken(ctx, "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("post-outage call: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected the cached token to survive the outage, got %q", token)
	}
}

func TestGetOrFetchTokenBadCredentials(t *testing.T) {
	stub := &identityStub{token: "tok-1", probeStatus: http.StatusOK}
	server := httptest.NewServer(stub.handler(t))
	defer server.Close()

	broker := NewTokenBroker(server.URL)
	_, err := broker.GetOrFetchToken(context.Background(), "user@example.com", "wrong")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("expected ErrAuthenticationFailed, got %v", err)
	}
}
