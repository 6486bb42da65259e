package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNotifyEncodesMessage(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("message")
	}))
	defer server.Close()

	n := NewHTTPNotifier(server.URL + "/send?message=${msg}")
	msg := "Bonne nouvelle, devis Q1 pour ACME signé !"
	if err := n.Notify(context.Background(), msg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != msg {
		t.Fatalf("expected %q after decoding, got %q", msg, got)
	}
}

func TestNotifyUnconfiguredTemplate(t *testing.T) {
	// No server: an empty template must not produce a request at all.
	n := NewHTTPNotifier("")
	if err := n.Notify(context.Background(), "hello"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNotifyEmptyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request for an empty message")
	}))
	defer server.Close()

	n := NewHTTPNotifier(server.URL + "/send?message=${msg}")
	if err := n.Notify(context.Background(), ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNotifySinkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := NewHTTPNotifier(server.URL + "/send?message=${msg}")
	if err := n.Notify(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error on a 5xx answer")
	}
}
