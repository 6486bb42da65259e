package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

func newBoltRepositoryTest(t *testing.T) *AssociationBoltRepository {
	t.Helper()
	repo, err := NewAssociationBoltRepository(filepath.Join(t.TempDir(), "siign.db"))
	if err != nil {
		t.Fatalf("opening bolt repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestBoltAssociateAndLookup(t *testing.T) {
	repo := newBoltRepositoryTest(t)
	ctx := context.Background()

	a, err := repo.Associate(ctx, "q1", "tx1")
	if err != nil {
		t.Fatalf("associate: %v", err)
	}
	if a.QuoteID != "q1" || a.TransactionID != "tx1" {
		t.Fatalf("unexpected association %+v", a)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	transactionID, err := repo.TransactionForQuote(ctx, "q1")
	if err != nil {
		t.Fatalf("transaction lookup: %v", err)
	}
	if transactionID != "tx1" {
		t.Fatalf("expected tx1, got %q", transactionID)
	}

	quoteID, err := repo.QuoteForTransaction(ctx, "tx1")
	if err != nil {
		t.Fatalf("quote lookup: %v", err)
	}
	if quoteID != "q1" {
		t.Fatalf("expected q1, got %q", quoteID)
	}
}

func TestBoltLookupAbsentReturnsEmpty(t *testing.T) {
	repo := newBoltRepositoryTest(t)
	ctx := context.Background()

	transactionID, err := repo.TransactionForQuote(ctx, "missing")
	if err != nil || transactionID != "" {
		t.Fatalf("expected empty id with no error, got %q, %v", transactionID, err)
	}
	quoteID, err := repo.QuoteForTransaction(ctx, "missing")
	if err != nil || quoteID != "" {
		t.Fatalf("expected empty id with no error, got %q, %v", quoteID, err)
	}
}

func TestBoltAssociateDuplicateQuote(t *testing.T) {
	repo := newBoltRepositoryTest(t)
	ctx := context.Background()

	if _, err := repo.Associate(ctx, "q1", "tx1"); err != nil {
		t.Fatalf("first associate: %v", err)
	}
	if _, err := repo.Associate(ctx, "q1", "tx2"); !errors.Is(err, interfaces.ErrAssociationExists) {
		t.Fatalf("expected ErrAssociationExists, got %v", err)
	}

	// The original row must survive the rejected insert.
	transactionID, err := repo.TransactionForQuote(ctx, "q1")
	if err != nil {
		t.Fatalf("transaction lookup: %v", err)
	}
	if transactionID != "tx1" {
		t.Fatalf("expected original tx1, got %q", transactionID)
	}
}

func TestBoltRemove(t *testing.T) {
	repo := newBoltRepositoryTest(t)
	ctx := context.Background()

	if _, err := repo.Associate(ctx, "q1", "tx1"); err != nil {
		t.Fatalf("associate: %v", err)
	}
	if err := repo.Remove(ctx, "q1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	transactionID, err := repo.TransactionForQuote(ctx, "q1")
	if err != nil || transactionID != "" {
		t.Fatalf("expected association gone, got %q, %v", transactionID, err)
	}

	// Removing an absent quote is not an error.
	if err := repo.Remove(ctx, "q1"); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	// The quote can be relaunched after removal.
	if _, err := repo.Associate(ctx, "q1", "tx2"); err != nil {
		t.Fatalf("re-associate: %v", err)
	}
}

func TestBoltListAllInsertionOrder(t *testing.T) {
	repo := newBoltRepositoryTest(t)
	ctx := context.Background()

	// Keys out of lexicographic order on purpose.
	for _, pair := range [][2]string{{"q9", "tx9"}, {"q1", "tx1"}, {"q5", "tx5"}} {
		if _, err := repo.Associate(ctx, pair[0], pair[1]); err != nil {
			t.Fatalf("associate %s: %v", pair[0], err)
		}
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 associations, got %d", len(all))
	}
	for i, want := range []string{"q9", "q1", "q5"} {
		if all[i].QuoteID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, all[i].QuoteID)
		}
	}
}
