// analytics/days.go
package analytics

import (
	"sort"

	"github.com/wzgold/tradelog/journal"
)

// DaySummary rolls one calendar day of trading up to its P&L and win/loss
// counts, the unit shown on the journal's calendar.
type DaySummary struct {
	Day    string
	PnL    float64
	Trades int
	Wins   int
	Losses int
}

// Days groups trades by local calendar day, ordered by day.
func Days(trades []journal.Trade) []DaySummary {
	byDay := make(map[string]*DaySummary)
	for _, t := range trades {
		day := t.TradeDate.Local().Format(dayLabel)
		s := byDay[day]
		if s == nil {
			s = &DaySummary{Day: day}
			byDay[day] = s
		}
		s.PnL += t.PnL
		s.Trades++
		if t.PnL > 0 {
			s.Wins++
		} else if t.PnL < 0 {
			s.Losses++
		}
	}

	out := make([]DaySummary, 0, len(byDay))
	for _, s := range byDay {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// GoalStatus is progress toward a weekly or monthly profit goal.
type GoalStatus struct {
	Progress float64 // percent of the target, clamped to [0, 100]
	Achieved bool
}

// GoalProgress measures netPnL against the goal amount. It returns false
// when the goal is unset, has no amount, or its window does not match the
// active display period.
func GoalProgress(g *journal.Goal, netPnL float64, p Period) (GoalStatus, bool) {
	if g == nil || g.Amount <= 0 {
		return GoalStatus{}, false
	}
	if (g.Type == journal.WeeklyGoal && p != Weekly) || (g.Type == journal.MonthlyGoal && p != Monthly) {
		return GoalStatus{}, false
	}

	var progress float64
	if netPnL > 0 {
		progress = netPnL / g.Amount * 100
		if progress > 100 {
			progress = 100
		}
	}
	return GoalStatus{Progress: progress, Achieved: netPnL >= g.Amount}, true
}
