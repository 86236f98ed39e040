package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/journal"
)

var depositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Record a deposit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransaction(cmd, args[0], journal.Deposit)
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Record a withdrawal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransaction(cmd, args[0], journal.Withdrawal)
	},
}

var txnsCmd = &cobra.Command{
	Use:   "txns",
	Short: "List balance transactions for a profile",
	Args:  cobra.NoArgs,
	RunE:  runTxns,
}

func init() {
	rootCmd.AddCommand(depositCmd)
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(txnsCmd)

	for _, c := range []*cobra.Command{depositCmd, withdrawCmd, txnsCmd} {
		c.Flags().StringP("profile", "p", "", "profile id")
	}
	depositCmd.Flags().String("date", "", "transaction date (defaults to now)")
	withdrawCmd.Flags().String("date", "", "transaction date (defaults to now)")
}

func runTransaction(cmd *cobra.Command, amountArg string, kind journal.TxnType) error {
	amount, err := strconv.ParseFloat(amountArg, 64)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}

	dateStr, _ := cmd.Flags().GetString("date")
	when, err := parseWhen(dateStr)
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID, _ := cmd.Flags().GetString("profile")
	b := &journal.BalanceTransaction{
		ProfileID: profileID,
		Type:      kind,
		Amount:    amount,
		Date:      when,
	}
	if err := j.AddTransaction(b); err != nil {
		return err
	}

	fmt.Printf("recorded %s of %s\n", kind, profileCurrency(j, profileID).Format(amount))
	return nil
}

func runTxns(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID, _ := cmd.Flags().GetString("profile")
	txns, err := j.Transactions(profileID)
	if err != nil {
		return err
	}
	currency := profileCurrency(j, profileID)

	for _, b := range txns {
		fmt.Printf("%s  %s  %-10s %s\n",
			b.ID, b.Date.Format("2006-01-02"), b.Type, currency.Format(b.Amount))
	}
	return nil
}
