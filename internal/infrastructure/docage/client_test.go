package docage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

func requireBasicAuth(t *testing.T, r *http.Request) {
	t.Helper()
	user, key, ok := r.BasicAuth()
	if !ok || user != "account@example.com" || key != "api-key" {
		t.Errorf("unexpected basic auth user=%q key=%q ok=%t", user, key, ok)
	}
}

func TestCreateFullTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBasicAuth(t, r)
		if r.Method != http.MethodPost || r.URL.Path != "/Transactions/CreateFullTransaction" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}

		var payload transactionPayload
		if err := json.Unmarshal([]byte(r.FormValue("Transaction")), &payload); err != nil {
			t.Fatalf("parsing Transaction field: %v", err)
		}
		if payload.Name != "Devis 1" || !payload.IsTest {
			t.Errorf("unexpected transaction payload %+v", payload)
		}
		if len(payload.TransactionFiles) != 1 || payload.TransactionFiles[0].Filename != "devis.pdf" {
			t.Errorf("unexpected files %+v", payload.TransactionFiles)
		}
		if len(payload.TransactionMembers) != 1 || payload.TransactionMembers[0].NotifyInvitation {
			t.Errorf("unexpected members %+v", payload.TransactionMembers)
		}
		if payload.Webhook != "https://siign.example.com/webhook?secret=s" {
			t.Errorf("unexpected webhook %q", payload.Webhook)
		}

		var client interfaces.ClientDescriptor
		if err := json.Unmarshal([]byte(r.FormValue("Client")), &client); err != nil {
			t.Fatalf("parsing Client field: %v", err)
		}
		if client.Email != "acme@example.com" || client.FirstName != "Ada" {
			t.Errorf("unexpected client %+v", client)
		}

		file, header, err := r.FormFile("Devis")
		if err != nil {
			t.Fatalf("reading Devis part: %v", err)
		}
		defer file.Close()
		if header.Filename != "devis.pdf" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		if ct := header.Header.Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("unexpected part content type %q", ct)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"Id":"tx1","Name":"Devis 1","Status":0}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	tx, err := c.CreateFullTransaction(
		context.Background(),
		"Devis 1",
		strings.NewReader("%PDF-1.4"),
		interfaces.ClientDescriptor{Email: "acme@example.com", FirstName: "Ada", LastName: "Lovelace"},
		true,
		"https://siign.example.com/webhook?secret=s",
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tx.ID != "tx1" {
		t.Fatalf("expected transaction id tx1, got %q", tx.ID)
	}
}

func TestCreateFullTransactionOmitsEmptyWebhook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if strings.Contains(r.FormValue("Transaction"), "Webhook") {
			t.Errorf("expected Webhook key omitted, got %s", r.FormValue("Transaction"))
		}
		w.Write([]byte(`{"Id":"tx1"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	if _, err := c.CreateFullTransaction(context.Background(), "Devis 1", strings.NewReader("pdf"), interfaces.ClientDescriptor{}, false, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestGetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBasicAuth(t, r)
		if r.Method != http.MethodGet || r.URL.Path != "/Transactions/ById/tx1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"Id":"tx1","Name":"Devis 1","Status":5,"MemberSummaries":[{"FriendlyName":"Client"}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	tx, err := c.GetTransaction(context.Background(), "tx1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tx.ID != "tx1" || tx.Status != 5 {
		t.Fatalf("unexpected transaction %+v", tx)
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	if _, err := c.GetTransaction(context.Background(), "ghost"); !errors.Is(err, interfaces.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestCancelTransaction(t *testing.T) {
	var cancelled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireBasicAuth(t, r)
		if r.Method != http.MethodDelete || r.URL.Path != "/Transactions/tx1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		cancelled = true
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	if err := c.CancelTransaction(context.Background(), "tx1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !cancelled {
		t.Fatal("expected the delete endpoint to be hit")
	}
}

func TestCancelTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := NewClient(server.URL, "account@example.com", "api-key")
	if err := c.CancelTransaction(context.Background(), "ghost"); !errors.Is(err, interfaces.ErrTransactionNotFound) {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
