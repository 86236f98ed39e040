package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzgold/tradelog/store"
)

func TestDeleteTradeRemovesBothImages(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t)
	p := newTestProfile(t, j)

	tr := &Trade{ProfileID: p.ID, Type: Long, Pair: "XAU/USD"}
	require.NoError(t, j.AttachBeforeImage(tr, []byte("before-bytes")))
	require.NoError(t, j.AttachAfterImage(tr, []byte("after-bytes")))
	require.NoError(t, j.AddTrade(tr))

	beforeID, afterID := tr.ScreenshotBeforeID, tr.ScreenshotAfterID
	require.NotEmpty(t, beforeID)
	require.NotEmpty(t, afterID)

	require.NoError(t, j.DeleteTrade(tr.ID))

	got, err := j.GetTrade(tr.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, imgID := range []string{beforeID, afterID} {
		data, err := j.GetImage(imgID)
		require.NoError(t, err)
		assert.Nil(t, data)
	}

	n, err := j.Store().Count(store.TradeImages)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteAbsentTradeIsNoOp(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t)
	require.NoError(t, j.DeleteTrade("never-existed"))
}

func TestReplaceImageDeletesOld(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t)
	p := newTestProfile(t, j)

	tr := &Trade{ProfileID: p.ID, Type: Long}
	require.NoError(t, j.AttachBeforeImage(tr, []byte("v1")))
	require.NoError(t, j.AddTrade(tr))
	oldID := tr.ScreenshotBeforeID

	require.NoError(t, j.AttachBeforeImage(tr, []byte("v2")))
	require.NoError(t, j.UpdateTrade(tr))
	assert.NotEqual(t, oldID, tr.ScreenshotBeforeID)

	gone, err := j.GetImage(oldID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	data, err := j.GetImage(tr.ScreenshotBeforeID)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)

	n, err := j.Store().Count(store.TradeImages)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeleteProfileLeavesNoOrphans(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t)
	p := newTestProfile(t, j)
	survivor := &Profile{Name: "Survivor", Currency: IDR}
	require.NoError(t, j.AddProfile(survivor))

	// Populate every child collection under p, plus one trade with images.
	tr := &Trade{ProfileID: p.ID, Type: Long, PnL: 100}
	require.NoError(t, j.AttachBeforeImage(tr, []byte("b")))
	require.NoError(t, j.AttachAfterImage(tr, []byte("a")))
	require.NoError(t, j.AddTrade(tr))
	require.NoError(t, j.AddTrade(&Trade{ProfileID: p.ID, Type: Short, PnL: -40}))
	require.NoError(t, j.AddTransaction(&BalanceTransaction{ProfileID: p.ID, Type: Deposit, Amount: 500}))
	require.NoError(t, j.AddPair(&Pair{ProfileID: p.ID, Name: "XAU/USD"}))
	require.NoError(t, j.AddTemplate(&Template{ProfileID: p.ID, Name: "Scalp"}))
	require.NoError(t, j.AddCustomField(&CustomField{ProfileID: p.ID, Name: "Session"}))
	require.NoError(t, j.SetGoal(&Goal{ProfileID: p.ID, Type: WeeklyGoal, Amount: 500}))

	// Data under the surviving profile must not be touched.
	keep := &Trade{ProfileID: survivor.ID, Type: Long, PnL: 10}
	require.NoError(t, j.AddTrade(keep))
	require.NoError(t, j.AddPair(&Pair{ProfileID: survivor.ID, Name: "EUR/USD"}))

	require.NoError(t, j.DeleteProfile(p.ID))

	gone, err := j.GetProfile(p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	for _, c := range profileScoped {
		docs, err := j.Store().GetAllByIndex(c, p.ID)
		require.NoError(t, err)
		assert.Empty(t, docs, "collection %s should have no records for the deleted profile", c)
	}

	n, err := j.Store().Count(store.TradeImages)
	require.NoError(t, err)
	assert.Zero(t, n)

	trades, err := j.Trades(survivor.ID)
	require.NoError(t, err)
	assert.Len(t, trades, 1)

	pairs, err := j.Pairs(survivor.ID)
	require.NoError(t, err)
	assert.Len(t, pairs, 1)
}
