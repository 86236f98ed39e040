package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/journal"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage the profile's profit goal",
	Long: `Manage the profile's profit goal. Each profile carries at most one
goal: a weekly or monthly profit target plus optional daily profit/loss
targets.`,
}

var goalSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set or replace the goal",
	Args:  cobra.NoArgs,
	RunE:  runGoalSet,
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the goal and progress for the current period",
	Args:  cobra.NoArgs,
	RunE:  runGoalShow,
}

var goalClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the goal",
	Args:  cobra.NoArgs,
	RunE:  runGoalClear,
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalClearCmd)

	goalCmd.PersistentFlags().StringP("profile", "p", "", "profile id")
	goalSetCmd.Flags().String("type", "weekly", "weekly or monthly")
	goalSetCmd.Flags().Float64("amount", 0, "profit target amount")
	goalSetCmd.Flags().Float64("daily-profit", 0, "daily profit target")
	goalSetCmd.Flags().Float64("daily-loss", 0, "daily loss limit")
}

func runGoalSet(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	kind, _ := cmd.Flags().GetString("type")
	amount, _ := cmd.Flags().GetFloat64("amount")
	dailyProfit, _ := cmd.Flags().GetFloat64("daily-profit")
	dailyLoss, _ := cmd.Flags().GetFloat64("daily-loss")

	g := &journal.Goal{
		ProfileID:         flagProfile(cmd),
		Type:              journal.GoalType(kind),
		Amount:            amount,
		DailyProfitTarget: dailyProfit,
		DailyLossTarget:   dailyLoss,
	}
	if err := j.SetGoal(g); err != nil {
		return err
	}
	fmt.Printf("set %s goal of %s\n", g.Type, profileCurrency(j, g.ProfileID).Format(g.Amount))
	return nil
}

func runGoalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profileID := flagProfile(cmd)
	g, err := j.GetGoal(profileID)
	if err != nil {
		return err
	}
	if g == nil {
		fmt.Println("no goal set")
		return nil
	}

	currency := profileCurrency(j, profileID)
	fmt.Printf("%s goal: %s\n", g.Type, currency.Format(g.Amount))
	if g.DailyProfitTarget > 0 {
		fmt.Printf("daily profit target: %s\n", currency.Format(g.DailyProfitTarget))
	}
	if g.DailyLossTarget > 0 {
		fmt.Printf("daily loss limit: %s\n", currency.Format(g.DailyLossTarget))
	}
	return nil
}

func runGoalClear(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.ClearGoal(flagProfile(cmd)); err != nil {
		return err
	}
	fmt.Println("goal cleared")
	return nil
}
