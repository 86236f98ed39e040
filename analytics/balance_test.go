package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzgold/tradelog/journal"
)

func TestCurveScenario(t *testing.T) {
	t.Parallel()

	// Deposit at d0, then +100 at d1, then -40 at d2.
	trades := []journal.Trade{
		{TradeDate: day(2), PnL: 100},
		{TradeDate: day(3), PnL: -40},
	}
	txns := []journal.BalanceTransaction{
		{Type: journal.Deposit, Amount: 500, Date: day(1)},
	}

	points := Curve(trades, txns)
	require.Len(t, points, 4)

	assert.Equal(t, "Initial", points[0].Label)
	assert.Zero(t, points[0].Balance)
	assert.InDelta(t, 500, points[1].Balance, 1e-9)
	assert.InDelta(t, 600, points[2].Balance, 1e-9)
	assert.InDelta(t, 560, points[3].Balance, 1e-9)

	assert.InDelta(t, 560, CurrentBalance(trades, txns), 1e-9)
}

func TestCurrentBalanceIndependentOfInsertionOrder(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{
		{TradeDate: day(5), PnL: -40},
		{TradeDate: day(2), PnL: 100},
		{TradeDate: day(9), PnL: 12.5},
	}
	txns := []journal.BalanceTransaction{
		{Type: journal.Withdrawal, Amount: 50, Date: day(7)},
		{Type: journal.Deposit, Amount: 500, Date: day(1)},
	}

	// 500 - 50 + 100 - 40 + 12.5
	want := 522.5
	assert.InDelta(t, want, CurrentBalance(trades, txns), 1e-9)

	// Reversed inputs give the same final balance.
	revTrades := []journal.Trade{trades[2], trades[0], trades[1]}
	revTxns := []journal.BalanceTransaction{txns[1], txns[0]}
	assert.InDelta(t, want, CurrentBalance(revTrades, revTxns), 1e-9)
}

func TestCurrentBalanceEmptyIsZero(t *testing.T) {
	t.Parallel()

	assert.Zero(t, CurrentBalance(nil, nil))
}

func TestCurveForPeriodUsesBaselineBeforeWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 4, 10, 15, 0, 0, 0, time.Local) // a Wednesday

	trades := []journal.Trade{
		{TradeDate: day(2), PnL: 100}, // before this week
		{TradeDate: day(9), PnL: -25}, // Tuesday of this week
	}
	txns := []journal.BalanceTransaction{
		{Type: journal.Deposit, Amount: 500, Date: day(1)}, // before this week
	}

	points := CurveForPeriod(trades, txns, Weekly, now)
	require.Len(t, points, 2)

	assert.Equal(t, "Start", points[0].Label)
	assert.InDelta(t, 600, points[0].Balance, 1e-9, "baseline is the balance entering the window")
	assert.InDelta(t, 575, points[1].Balance, 1e-9)
}

func TestCurveForPeriodNoPriorEventsStartsAtZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 4, 10, 15, 0, 0, 0, time.Local)
	trades := []journal.Trade{{TradeDate: day(9), PnL: 30}}

	points := CurveForPeriod(trades, nil, Weekly, now)
	require.Len(t, points, 2)
	assert.Zero(t, points[0].Balance)
	assert.InDelta(t, 30, points[1].Balance, 1e-9)
}

func TestCurveForPeriodAllIsUnfiltered(t *testing.T) {
	t.Parallel()

	trades := []journal.Trade{{TradeDate: day(2), PnL: 100}}
	points := CurveForPeriod(trades, nil, All, time.Now())

	require.Len(t, points, 2)
	assert.Equal(t, "Initial", points[0].Label)
}

func TestFilterTrades(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 4, 10, 15, 0, 0, 0, time.Local)
	trades := []journal.Trade{
		{TradeDate: day(2), PnL: 1},  // previous week
		{TradeDate: day(8), PnL: 2},  // Monday of this week
		{TradeDate: day(10), PnL: 3}, // today
	}

	assert.Len(t, FilterTrades(trades, All, now), 3)
	assert.Len(t, FilterTrades(trades, Weekly, now), 2)
	assert.Len(t, FilterTrades(trades, Daily, now), 1)
	assert.Len(t, FilterTrades(trades, Monthly, now), 3)
}
