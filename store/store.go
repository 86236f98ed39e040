// Package store is a small document store over SQLite. Each collection is a
// table keyed by a unique id with one non-unique secondary index (profile_id)
// on profile-scoped collections. Documents are opaque byte blobs; the typed
// layer above decides what goes in them.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// ErrDuplicateKey is returned by Add when the id already exists in the
// collection. Put never returns it.
var ErrDuplicateKey = errors.New("store: duplicate key")

type conn interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// ops carries every collection operation. Store and Tx both embed it, so the
// cascade engine can run the same calls inside a transaction.
type ops struct {
	c conn
}

type Store struct {
	ops
	db *sql.DB
}

// Tx is a transaction handle passed to the function given to Update.
type Tx struct {
	ops
}

// Open opens (creating if needed) the journal database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{ops: ops{c: db}, db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn inside a single transaction. Every store call made through
// the Tx commits or rolls back as one unit, so multi-collection sequences
// (cascade deletes) never leave partial state behind.
func (s *Store) Update(fn func(tx *Tx) error) error {
	sqlTx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := fn(&Tx{ops{c: sqlTx}}); err != nil {
		sqlTx.Rollback()
		return err
	}
	return sqlTx.Commit()
}

// Add persists a new document. It fails with ErrDuplicateKey when id is
// already present.
func (o ops) Add(c Collection, id, profileID string, doc []byte) error {
	_, err := o.c.Exec(
		fmt.Sprintf(`INSERT INTO %s (id, profile_id, doc) VALUES (?, ?, ?)`, c),
		id, profileID, doc,
	)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateKey, c, id)
		}
		return fmt.Errorf("add %s: %w", c, err)
	}
	return nil
}

// Put inserts or replaces the document by id.
func (o ops) Put(c Collection, id, profileID string, doc []byte) error {
	_, err := o.c.Exec(
		fmt.Sprintf(`INSERT OR REPLACE INTO %s (id, profile_id, doc) VALUES (?, ?, ?)`, c),
		id, profileID, doc,
	)
	if err != nil {
		return fmt.Errorf("put %s: %w", c, err)
	}
	return nil
}

// Get returns the document and true, or nil and false when the key is absent.
// Absence is a normal outcome, not an error.
func (o ops) Get(c Collection, id string) ([]byte, bool, error) {
	var doc []byte
	err := o.c.QueryRow(
		fmt.Sprintf(`SELECT doc FROM %s WHERE id = ?`, c), id,
	).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", c, err)
	}
	return doc, true, nil
}

// GetAll returns every document in the collection. Order is unspecified.
func (o ops) GetAll(c Collection) ([][]byte, error) {
	return o.scan(fmt.Sprintf(`SELECT doc FROM %s`, c))
}

// GetAllByIndex returns every document whose profile_id matches. Order is
// unspecified.
func (o ops) GetAllByIndex(c Collection, profileID string) ([][]byte, error) {
	return o.scan(fmt.Sprintf(`SELECT doc FROM %s WHERE profile_id = ?`, c), profileID)
}

// Remove deletes by id. Removing an absent key is not an error.
func (o ops) Remove(c Collection, id string) error {
	_, err := o.c.Exec(fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, c), id)
	if err != nil {
		return fmt.Errorf("remove %s: %w", c, err)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (o ops) Count(c Collection) (int, error) {
	var n int
	err := o.c.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c, err)
	}
	return n, nil
}

func (o ops) scan(query string, args ...any) ([][]byte, error) {
	rows, err := o.c.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
