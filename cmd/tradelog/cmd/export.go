package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/analytics"
	"github.com/wzgold/tradelog/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a profile's trades as CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("profile", "p", "", "profile id")
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	exportCmd.Flags().String("period", "", "all, daily, weekly, monthly or yearly")
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	periodFlag, _ := cmd.Flags().GetString("period")
	period, err := activePeriod(periodFlag)
	if err != nil {
		return err
	}

	trades, err := j.Trades(flagProfile(cmd))
	if err != nil {
		return err
	}
	trades = analytics.FilterTrades(trades, period, time.Now())

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return journal.WriteTradesCSV(out, trades)
}
