// journal/csv.go
package journal

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// WriteTradesCSV writes the trade list as CSV, one row per trade with a
// header line.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{
		"id", "profile_id", "trade_date", "pair", "type", "lot_size",
		"pnl", "setup", "entry_price", "take_profit", "stop_loss", "risk_reward",
	})
	if err != nil {
		return err
	}

	for _, t := range trades {
		err := cw.Write([]string{
			t.ID,
			t.ProfileID,
			t.TradeDate.Format(time.RFC3339),
			t.Pair,
			string(t.Type),
			f(t.LotSize),
			f(t.PnL),
			t.Setup,
			f(t.EntryPrice),
			f(t.TakeProfit),
			f(t.StopLoss),
			f(t.RiskRewardRatio),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
