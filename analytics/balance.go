// Package analytics derives the balance curve and performance statistics
// from a profile's trades and cash transactions. Everything here is a pure
// function of its inputs; the caller loads the entities and picks the
// display period.
package analytics

import (
	"sort"
	"time"

	"github.com/wzgold/tradelog/journal"
)

// Point is one step of the balance curve. Synthetic points ("Initial",
// "Start") carry a zero Time.
type Point struct {
	Time    time.Time
	Label   string
	Balance float64
}

const dayLabel = "2006-01-02"

// Curve replays every trade and balance transaction in date order and
// returns the running balance, starting from an implicit zero "Initial"
// point. Same-instant events keep their relative input order; only the
// intermediate curve shape depends on it, never the final balance.
func Curve(trades []journal.Trade, txns []journal.BalanceTransaction) []Point {
	type event struct {
		date  time.Time
		delta float64
	}

	events := make([]event, 0, len(trades)+len(txns))
	for _, t := range trades {
		events = append(events, event{date: t.TradeDate, delta: t.PnL})
	}
	for _, b := range txns {
		events = append(events, event{date: b.Date, delta: b.Delta()})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].date.Before(events[j].date)
	})

	points := make([]Point, 0, len(events)+1)
	points = append(points, Point{Label: "Initial"})

	var balance float64
	for _, e := range events {
		balance += e.delta
		points = append(points, Point{
			Time:    e.date,
			Label:   e.date.Local().Format(dayLabel),
			Balance: balance,
		})
	}
	return points
}

// CurveForPeriod windows the full curve to the display period. The balance
// of the latest point dated strictly before the window start becomes the
// baseline of a synthetic "Start" point; only points at or after the start
// follow it. All returns the unfiltered curve.
func CurveForPeriod(trades []journal.Trade, txns []journal.BalanceTransaction, p Period, now time.Time) []Point {
	points := Curve(trades, txns)

	start, bounded := p.Start(now)
	if !bounded {
		return points
	}

	var baseline float64
	for _, pt := range points {
		if pt.Time.IsZero() {
			continue
		}
		if pt.Time.Before(start) {
			baseline = pt.Balance
		}
	}

	out := []Point{{Label: "Start", Balance: baseline}}
	for _, pt := range points {
		if pt.Time.IsZero() || pt.Time.Before(start) {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// CurrentBalance is the final balance after replaying every event:
// deposits minus withdrawals plus trade P&L, independent of insertion order.
func CurrentBalance(trades []journal.Trade, txns []journal.BalanceTransaction) float64 {
	points := Curve(trades, txns)
	return points[len(points)-1].Balance
}

// FilterTrades returns the trades whose date falls inside the period ending
// at now.
func FilterTrades(trades []journal.Trade, p Period, now time.Time) []journal.Trade {
	if p == All {
		return trades
	}
	out := make([]journal.Trade, 0, len(trades))
	for _, t := range trades {
		if p.In(t.TradeDate, now) {
			out = append(out, t)
		}
	}
	return out
}
