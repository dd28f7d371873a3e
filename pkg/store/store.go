// Package store provides a persistent cache of evaluation results, backed by
// a bolt database.
//
// Results are keyed by the deterministic code rendering of a fully bound
// expression tree. Since encoded values use the machine's native byte order,
// a database written on one architecture is not portable to another.
package store

import (
	"errors"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrNoResult is returned by GetResult when no result is stored for an
// expression.
var ErrNoResult = errors.New("no result for expression")

// ResultStore is the interface of the result cache.
type ResultStore interface {
	// GetResult returns the encoded result stored for the given expression
	// rendering, or ErrNoResult.
	GetResult(code string) ([]byte, error)
	// PutResult stores the encoded result for the given expression
	// rendering, replacing any previous one.
	PutResult(code string, data []byte) error
	// DelResult removes the stored result for the given expression
	// rendering, if any.
	DelResult(code string) error
}

// DBStore is a ResultStore backed by a database that needs closing.
type DBStore interface {
	ResultStore
	Close() error
}

var initDB = map[string]func(tx *bolt.Tx) error{}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a store for the database at the given path, creating the
// database and its tables as needed.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0o644,
		&bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

// MustTempStore returns a store backed by a temporary file, and a cleanup
// function that should be called when the store is no longer used.
func MustTempStore() (DBStore, func()) {
	f, err := os.CreateTemp("", "xpr.store.test")
	if err != nil {
		panic(fmt.Sprintf("failed to open temp file: %v", err))
	}
	st, err := NewStore(f.Name())
	if err != nil {
		panic(fmt.Sprintf("failed to create temp store: %v", err))
	}
	return st, func() {
		st.Close()
		f.Close()
		if err := os.Remove(f.Name()); err != nil {
			fmt.Fprintln(os.Stderr, "failed to remove temp file:", err)
		}
	}
}
