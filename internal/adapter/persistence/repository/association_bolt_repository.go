package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	bolt "github.com/boltdb/bolt"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"
)

const associationsBucket = "associations"

// AssociationBoltRepository persists the quote/transaction ledger in a local
// BoltDB file (DB_PATH). This is the default backend: a single-table mapping
// does not need an external database process.
//
// Uniqueness of quote_id holds because the quote id is the bucket key and the
// existence check and the put run inside one write transaction.

type AssociationBoltRepository struct {
	db *bolt.DB
}

var _ interfaces.IAssociationLedger = (*AssociationBoltRepository)(nil)

// NewAssociationBoltRepository opens (or creates) the BoltDB file at path and
// ensures the associations bucket exists.
func NewAssociationBoltRepository(path string) (*AssociationBoltRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(associationsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &AssociationBoltRepository{db: db}, nil
}

// Close releases the database file lock.
func (r *AssociationBoltRepository) Close() error {
	return r.db.Close()
}

func (r *AssociationBoltRepository) Associate(ctx context.Context, quoteID, transactionID string) (entities.Association, error) {
	a := entities.Association{
		QuoteID:       quoteID,
		TransactionID: transactionID,
		CreatedAt:     time.Now().UTC(),
	}

	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(associationsBucket))
		if b.Get([]byte(quoteID)) != nil {
			return interfaces.ErrAssociationExists
		}
		v, err := json.Marshal(a)
		if err != nil {
			return err
		}
		return b.Put([]byte(quoteID), v)
	})
	if err != nil {
		return entities.Association{}, err
	}
	return a, nil
}

func (r *AssociationBoltRepository) TransactionForQuote(ctx context.Context, quoteID string) (string, error) {
	var transactionID string
	err := r.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(associationsBucket)).Get([]byte(quoteID))
		if v == nil {
			return nil
		}
		var a entities.Association
		if err := json.Unmarshal(v, &a); err != nil {
			return err
		}
		transactionID = a.TransactionID
		return nil
	})
	return transactionID, err
}

func (r *AssociationBoltRepository) QuoteForTransaction(ctx context.Context, transactionID string) (string, error) {
	var quoteID string
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(associationsBucket)).ForEach(func(k, v []byte) error {
			var a entities.Association
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			if a.TransactionID == transactionID && quoteID == "" {
				quoteID = a.QuoteID
			}
			return nil
		})
	})
	return quoteID, err
}

func (r *AssociationBoltRepository) Remove(ctx context.Context, quoteID string) error {
	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(associationsBucket)).Delete([]byte(quoteID))
	})
}

func (r *AssociationBoltRepository) ListAll(ctx context.Context) ([]entities.Association, error) {
	associations := []entities.Association{}
	err := r.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(associationsBucket)).ForEach(func(k, v []byte) error {
			var a entities.Association
			if err := json.Unmarshal(v, &a); err != nil {
				return err
			}
			associations = append(associations, a)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	// Bucket iteration is key-ordered; created_at restores insertion order.
	sort.Slice(associations, func(i, j int) bool {
		return associations[i].CreatedAt.Before(associations[j].CreatedAt)
	})
	return associations, nil
}
