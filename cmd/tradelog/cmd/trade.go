package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/analytics"
	"github.com/wzgold/tradelog/journal"
)

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Record and inspect trades",
}

var tradeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trade",
	Long: `Record a trade under a profile.

When entry, take-profit and stop-loss prices are all given and no manual
--rr is set, the risk/reward ratio is derived from the prices.

Examples:
  tradelog trade add --profile <id> --pair XAU/USD --type long --lot 0.05 --pnl 120.50
  tradelog trade add --profile <id> --pair EUR/USD --type short --entry 1.0850 --tp 1.0800 --sl 1.0875 --before before.png`,
	Args: cobra.NoArgs,
	RunE: runTradeAdd,
}

var tradeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trades for a profile",
	Args:  cobra.NoArgs,
	RunE:  runTradeList,
}

var tradeShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show one trade in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeShow,
}

var tradeDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a trade and its screenshots",
	Args:  cobra.ExactArgs(1),
	RunE:  runTradeDelete,
}

func init() {
	rootCmd.AddCommand(tradeCmd)
	tradeCmd.AddCommand(tradeAddCmd)
	tradeCmd.AddCommand(tradeListCmd)
	tradeCmd.AddCommand(tradeShowCmd)
	tradeCmd.AddCommand(tradeDeleteCmd)

	tradeCmd.PersistentFlags().StringP("profile", "p", "", "profile id")

	tradeAddCmd.Flags().String("pair", "", "instrument, e.g. XAU/USD")
	tradeAddCmd.Flags().String("type", "long", "long or short")
	tradeAddCmd.Flags().Float64("lot", 0, "lot size")
	tradeAddCmd.Flags().Float64("pnl", 0, "realized profit or loss")
	tradeAddCmd.Flags().String("setup", "", "setup / strategy")
	tradeAddCmd.Flags().String("notes", "", "free-form notes")
	tradeAddCmd.Flags().Float64("entry", 0, "entry price")
	tradeAddCmd.Flags().Float64("tp", 0, "take-profit price")
	tradeAddCmd.Flags().Float64("sl", 0, "stop-loss price")
	tradeAddCmd.Flags().Float64("rr", 0, "manual risk/reward ratio override")
	tradeAddCmd.Flags().String("date", "", "trade date (defaults to now)")
	tradeAddCmd.Flags().String("template", "", "template id to prefill from")
	tradeAddCmd.Flags().String("before", "", "path to before-trade screenshot")
	tradeAddCmd.Flags().String("after", "", "path to after-trade screenshot")
	tradeAddCmd.Flags().StringArray("custom", nil, "custom field value as name=value (repeatable)")

	tradeListCmd.Flags().String("period", "", "all, daily, weekly, monthly or yearly")
}

func runTradeAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID, _ := cmd.Flags().GetString("profile")
	t := &journal.Trade{ProfileID: profileID}

	if tmplID, _ := cmd.Flags().GetString("template"); tmplID != "" {
		if err := prefillFromTemplate(j, t, tmplID); err != nil {
			return err
		}
	}

	if v, _ := cmd.Flags().GetString("pair"); v != "" || t.Pair == "" {
		t.Pair = v
	}
	if v, _ := cmd.Flags().GetString("type"); cmd.Flags().Changed("type") || t.Type == "" {
		t.Type = journal.TradeType(v)
	}
	if cmd.Flags().Changed("lot") {
		t.LotSize, _ = cmd.Flags().GetFloat64("lot")
	}
	if cmd.Flags().Changed("pnl") {
		t.PnL, _ = cmd.Flags().GetFloat64("pnl")
	}
	if v, _ := cmd.Flags().GetString("setup"); v != "" {
		t.Setup = v
	}
	t.Notes, _ = cmd.Flags().GetString("notes")
	t.EntryPrice, _ = cmd.Flags().GetFloat64("entry")
	t.TakeProfit, _ = cmd.Flags().GetFloat64("tp")
	t.StopLoss, _ = cmd.Flags().GetFloat64("sl")
	if cmd.Flags().Changed("rr") {
		t.RiskRewardRatio, _ = cmd.Flags().GetFloat64("rr")
	}

	dateStr, _ := cmd.Flags().GetString("date")
	when, err := parseWhen(dateStr)
	if err != nil {
		return err
	}
	t.TradeDate = when

	custom, _ := cmd.Flags().GetStringArray("custom")
	if len(custom) > 0 {
		if err := applyCustomData(j, t, custom); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("before"); path != "" {
		if err := attachScreenshot(j, t, path, j.AttachBeforeImage); err != nil {
			return err
		}
	}
	if path, _ := cmd.Flags().GetString("after"); path != "" {
		if err := attachScreenshot(j, t, path, j.AttachAfterImage); err != nil {
			return err
		}
	}

	if err := j.AddTrade(t); err != nil {
		return err
	}

	fmt.Printf("recorded trade %s (%s %s, pnl %s)\n",
		t.ID, t.Type, t.Pair, profileCurrency(j, t.ProfileID).Format(t.PnL))
	return nil
}

func prefillFromTemplate(j *journal.Journal, t *journal.Trade, tmplID string) error {
	templates, err := j.Templates(t.ProfileID)
	if err != nil {
		return err
	}
	for _, tmpl := range templates {
		if tmpl.ID == tmplID {
			t.Pair = tmpl.Pair
			t.Type = tmpl.Type
			t.LotSize = tmpl.LotSize
			t.PnL = tmpl.PnL
			t.Setup = tmpl.Setup
			t.RiskRewardRatio = tmpl.RiskRewardRatio
			return nil
		}
	}
	return fmt.Errorf("template %q not found", tmplID)
}

// applyCustomData fills trade.CustomData from name=value arguments, accepting
// only names declared as custom fields for the profile.
func applyCustomData(j *journal.Journal, t *journal.Trade, pairs []string) error {
	fields, err := j.CustomFields(t.ProfileID)
	if err != nil {
		return err
	}
	known := make(map[string]string, len(fields))
	for _, f := range fields {
		known[strings.ToLower(f.Name)] = f.Name
	}

	t.CustomData = make(map[string]string, len(pairs))
	for _, kv := range pairs {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("custom value %q is not name=value", kv)
		}
		canonical, ok := known[strings.ToLower(name)]
		if !ok {
			return fmt.Errorf("no custom field named %q for this profile", name)
		}
		t.CustomData[canonical] = value
	}
	return nil
}

func attachScreenshot(j *journal.Journal, t *journal.Trade, path string, attach func(*journal.Trade, []byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read screenshot: %w", err)
	}
	return attach(t, data)
}

func runTradeList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID, _ := cmd.Flags().GetString("profile")
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
	currency := profileCurrency(j, profileID)

	for _, t := range trades {
		rr := "-"
		if t.RiskRewardRatio > 0 {
			rr = fmt.Sprintf("%.2fR", t.RiskRewardRatio)
		}
		fmt.Printf("%s  %s  %-10s %-5s lot %.2f  %12s  %s\n",
			t.ID, t.TradeDate.Format("2006-01-02 15:04"), t.Pair, t.Type,
			t.LotSize, currency.Format(t.PnL), rr)
	}
	return nil
}

func runTradeShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	t, err := j.GetTrade(args[0])
	if err != nil {
		return err
	}
	if t == nil {
		return fmt.Errorf("trade %q not found", args[0])
	}
	currency := profileCurrency(j, t.ProfileID)

	fmt.Printf("Trade %s\n", t.ID)
	fmt.Printf("  Date:       %s\n", t.TradeDate.Format("2006-01-02 15:04"))
	fmt.Printf("  Pair:       %s (%s)\n", t.Pair, t.Type)
	fmt.Printf("  Lot size:   %.2f\n", t.LotSize)
	fmt.Printf("  P&L:        %s\n", currency.Format(t.PnL))
	if t.RiskRewardRatio > 0 {
		fmt.Printf("  R:R:        1:%.2f\n", t.RiskRewardRatio)
	}
	if t.EntryPrice > 0 {
		fmt.Printf("  Entry/TP/SL: %g / %g / %g\n", t.EntryPrice, t.TakeProfit, t.StopLoss)
	}
	if t.Setup != "" {
		fmt.Printf("  Setup:      %s\n", t.Setup)
	}
	for name, value := range t.CustomData {
		fmt.Printf("  %s: %s\n", name, value)
	}
	if t.ScreenshotBeforeID != "" {
		fmt.Printf("  Before img: %s\n", t.ScreenshotBeforeID)
	}
	if t.ScreenshotAfterID != "" {
		fmt.Printf("  After img:  %s\n", t.ScreenshotAfterID)
	}
	if t.Notes != "" {
		fmt.Printf("  Notes:      %s\n", t.Notes)
	}
	return nil
}

func runTradeDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	fmt.Printf("deleted trade %s\n", args[0])
	return nil
}
