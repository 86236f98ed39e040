package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/journal"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage journal profiles",
	Long: `Manage journal profiles. A profile is an isolated trading account:
trades, transactions, pairs, templates, fields and goals all belong to
exactly one profile and are removed with it.`,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <profile-id>",
	Short: "Delete a profile and every entity scoped to it",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)

	profileAddCmd.Flags().String("currency", "", "profile currency (USD or IDR)")
	profileAddCmd.Flags().String("description", "", "free-form description")
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	currency, _ := cmd.Flags().GetString("currency")
	if currency == "" {
		currency = cfg.Currency
	}
	description, _ := cmd.Flags().GetString("description")

	p := &journal.Profile{
		Name:        args[0],
		Description: description,
		Currency:    journal.Currency(currency),
	}
	if err := j.AddProfile(p); err != nil {
		return err
	}

	fmt.Printf("created profile %s (%s, %s)\n", p.ID, p.Name, p.Currency)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	profiles, err := j.Profiles()
	if err != nil {
		return err
	}

	for _, p := range profiles {
		fmt.Printf("%s  %-20s %s  %s\n", p.ID, p.Name, p.Currency, p.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func runProfileDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteProfile(args[0]); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	fmt.Printf("deleted profile %s and all of its data\n", args[0])
	return nil
}
