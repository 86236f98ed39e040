// Package journal is the typed persistence layer of the trading journal:
// one facade per entity over the document store, validation before every
// write, and cascade deletes that keep referential integrity when a trade
// or a whole profile goes away.
package journal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/wzgold/tradelog/store"
)

// Journal wraps the store with typed, validated operations for one user
// session. The user id comes from an external identity provider; the journal
// only checks that one is present before allowing profile operations.
type Journal struct {
	st     *store.Store
	userID string
}

// Open opens the journal database at path for the given user.
func Open(path, userID string) (*Journal, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	return New(st, userID), nil
}

// New wraps an already-open store.
func New(st *store.Store, userID string) *Journal {
	return &Journal{st: st, userID: userID}
}

func (j *Journal) Close() error {
	return j.st.Close()
}

// Store exposes the underlying document store, mainly for tests.
func (j *Journal) Store() *store.Store {
	return j.st
}

func (j *Journal) requireUser() error {
	if strings.TrimSpace(j.userID) == "" {
		return ErrNoUser
	}
	return nil
}

func marshal(v any) ([]byte, error) {
	doc, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return doc, nil
}

func blankName(name string) bool {
	return strings.TrimSpace(name) == ""
}

// decodeAll unmarshals a slice of documents into entities of type T.
func decodeAll[T any](docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeOne unmarshals a single document, mapping absence to a nil pointer.
func decodeOne[T any](doc []byte, found bool) (*T, error) {
	if !found {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &v, nil
}
