package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	st, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestAddGetRoundTrip(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	doc := []byte(`{"id":"T1","pair":"XAU/USD"}`)
	require.NoError(t, st.Add(Trades, "T1", "P1", doc))

	got, found, err := st.Get(Trades, "T1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, doc, got)
}

func TestAddDuplicateKey(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	require.NoError(t, st.Add(Trades, "T1", "P1", []byte(`{}`)))
	err := st.Add(Trades, "T1", "P1", []byte(`{}`))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestPutReplacesWithoutGrowing(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	require.NoError(t, st.Add(Trades, "T1", "P1", []byte(`{"v":1}`)))
	require.NoError(t, st.Put(Trades, "T1", "P1", []byte(`{"v":2}`)))

	n, err := st.Count(Trades)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, found, err := st.Get(Trades, "T1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`{"v":2}`), got)
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	got, found, err := st.Get(Goals, "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	require.NoError(t, st.Add(Pairs, "p1", "P1", []byte(`{}`)))
	require.NoError(t, st.Remove(Pairs, "p1"))
	require.NoError(t, st.Remove(Pairs, "p1"))
	require.NoError(t, st.Remove(Pairs, "never-existed"))
}

func TestGetAllByIndexScopesByProfile(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	require.NoError(t, st.Add(Trades, "T1", "P1", []byte(`{"id":"T1"}`)))
	require.NoError(t, st.Add(Trades, "T2", "P1", []byte(`{"id":"T2"}`)))
	require.NoError(t, st.Add(Trades, "T3", "P2", []byte(`{"id":"T3"}`)))

	docs, err := st.GetAllByIndex(Trades, "P1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = st.GetAllByIndex(Trades, "P2")
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	docs, err = st.GetAllByIndex(Trades, "P3")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	boom := errors.New("boom")
	err := st.Update(func(tx *Tx) error {
		if err := tx.Add(Trades, "T1", "P1", []byte(`{}`)); err != nil {
			return err
		}
		if err := tx.Add(Pairs, "p1", "P1", []byte(`{}`)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	for _, c := range []Collection{Trades, Pairs} {
		n, err := st.Count(c)
		require.NoError(t, err)
		assert.Zero(t, n, "collection %s should be empty after rollback", c)
	}
}

func TestUpdateCommits(t *testing.T) {
	t.Parallel()

	st := newTestStore(t)

	err := st.Update(func(tx *Tx) error {
		if err := tx.Add(Trades, "T1", "P1", []byte(`{}`)); err != nil {
			return err
		}
		return tx.Remove(Trades, "T1")
	})
	require.NoError(t, err)

	n, err := st.Count(Trades)
	require.NoError(t, err)
	assert.Zero(t, n)
}
