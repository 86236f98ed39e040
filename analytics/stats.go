// analytics/stats.go
package analytics

import (
	"math"

	"github.com/wzgold/tradelog/journal"
)

// Stats aggregates performance over a trade set. Trades with zero P&L count
// toward neither wins nor losses, but their lot size still counts toward
// TotalLotUsed.
type Stats struct {
	Wins            int
	Losses          int
	GrossProfit     float64
	GrossLoss       float64
	NetPnL          float64
	TradeWinRate    float64
	ProfitFactor    float64
	AvgWin          float64
	AvgLoss         float64
	AvgWinLossRatio float64
	ProfitableDays  int
	LosingDays      int
	DayWinRate      float64
	AvgRiskReward   float64
	TotalLotUsed    float64
}

// Compute derives statistics from an already period-filtered trade set. An
// empty set yields the zero Stats; no formula ever divides by zero.
func Compute(trades []journal.Trade) Stats {
	var s Stats
	if len(trades) == 0 {
		return s
	}

	var lossSum float64
	dailyPnL := make(map[string]float64)
	var rrSum float64
	var rrCount int

	for _, t := range trades {
		switch {
		case t.PnL > 0:
			s.Wins++
			s.GrossProfit += t.PnL
		case t.PnL < 0:
			s.Losses++
			lossSum += t.PnL
		}

		day := t.TradeDate.Local().Format(dayLabel)
		dailyPnL[day] += t.PnL

		if t.RiskRewardRatio > 0 {
			rrSum += t.RiskRewardRatio
			rrCount++
		}
		s.TotalLotUsed += t.LotSize
	}

	s.GrossLoss = math.Abs(lossSum)
	s.NetPnL = s.GrossProfit - s.GrossLoss
	s.TradeWinRate = float64(s.Wins) / float64(len(trades)) * 100
	s.ProfitFactor = ratio(s.GrossProfit, s.GrossLoss)

	if s.Wins > 0 {
		s.AvgWin = s.GrossProfit / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = -s.GrossLoss / float64(s.Losses)
	}
	s.AvgWinLossRatio = ratio(s.AvgWin, math.Abs(s.AvgLoss))

	for _, pnl := range dailyPnL {
		if pnl > 0 {
			s.ProfitableDays++
		} else if pnl < 0 {
			s.LosingDays++
		}
	}
	if days := s.ProfitableDays + s.LosingDays; days > 0 {
		s.DayWinRate = float64(s.ProfitableDays) / float64(days) * 100
	}

	if rrCount > 0 {
		s.AvgRiskReward = rrSum / float64(rrCount)
	}
	return s
}

// ratio is num/den with the degenerate cases pinned down: +Inf when den is
// zero but num is positive, 0 when both are zero.
func ratio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	if num > 0 {
		return math.Inf(1)
	}
	return 0
}
