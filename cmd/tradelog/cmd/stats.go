package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/analytics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Performance statistics for a profile",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Balance curve and current balance for a profile",
	Args:  cobra.NoArgs,
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(balanceCmd)

	for _, c := range []*cobra.Command{statsCmd, balanceCmd} {
		c.Flags().StringP("profile", "p", "", "profile id")
		c.Flags().String("period", "", "all, daily, weekly, monthly or yearly")
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID := flagProfile(cmd)
	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := activePeriod(periodFlag)
	if err != nil {
		return err
	}

	trades, err := j.Trades(profileID)
	if err != nil {
		return err
	}
	trades = analytics.FilterTrades(trades, period, time.Now())
	stats := analytics.Compute(trades)
	currency := profileCurrency(j, profileID)

	fmt.Printf("Period: %s (%d trades)\n", period, len(trades))
	fmt.Printf("  Net P&L:        %s\n", currency.Format(stats.NetPnL))
	fmt.Printf("  Wins/Losses:    %d/%d (win rate %.1f%%)\n", stats.Wins, stats.Losses, stats.TradeWinRate)
	fmt.Printf("  Gross profit:   %s\n", currency.Format(stats.GrossProfit))
	fmt.Printf("  Gross loss:     %s\n", currency.Format(stats.GrossLoss))
	fmt.Printf("  Profit factor:  %s\n", finiteOr(stats.ProfitFactor, "inf"))
	fmt.Printf("  Avg win/loss:   %s / %s (ratio %s)\n",
		currency.Format(stats.AvgWin), currency.Format(stats.AvgLoss),
		finiteOr(stats.AvgWinLossRatio, "inf"))
	fmt.Printf("  Day win rate:   %.1f%% (%d up, %d down)\n", stats.DayWinRate, stats.ProfitableDays, stats.LosingDays)
	fmt.Printf("  Avg R:R:        %.2f\n", stats.AvgRiskReward)
	fmt.Printf("  Total lot used: %.2f\n", stats.TotalLotUsed)

	if goal, err := j.GetGoal(profileID); err == nil {
		if status, ok := analytics.GoalProgress(goal, stats.NetPnL, period); ok {
			achieved := ""
			if status.Achieved {
				achieved = "  (achieved)"
			}
			fmt.Printf("  Goal progress:  %.1f%%%s\n", status.Progress, achieved)
		}
	}
	return nil
}

func runBalance(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID := flagProfile(cmd)
	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := activePeriod(periodFlag)
	if err != nil {
		return err
	}

	trades, err := j.Trades(profileID)
	if err != nil {
		return err
	}
	txns, err := j.Transactions(profileID)
	if err != nil {
		return err
	}

	currency := profileCurrency(j, profileID)
	for _, pt := range analytics.CurveForPeriod(trades, txns, period, time.Now()) {
		fmt.Printf("%-12s %s\n", pt.Label, currency.Format(pt.Balance))
	}
	fmt.Printf("current balance: %s\n", currency.Format(analytics.CurrentBalance(trades, txns)))
	return nil
}

func finiteOr(x float64, alt string) string {
	if math.IsInf(x, 0) {
		return alt
	}
	return fmt.Sprintf("%.2f", x)
}
