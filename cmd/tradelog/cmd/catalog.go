package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/journal"
)

// Pair, custom-field and template management. These are thin wrappers; the
// interesting rules (name uniqueness, case-insensitive field collisions)
// live in the journal package.

var pairCmd = &cobra.Command{
	Use:   "pair",
	Short: "Manage the instrument catalogue",
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage custom trade fields",
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage trade templates",
}

func init() {
	rootCmd.AddCommand(pairCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(templateCmd)

	for _, c := range []*cobra.Command{pairCmd, fieldCmd, templateCmd} {
		c.PersistentFlags().StringP("profile", "p", "", "profile id")
	}

	pairCmd.AddCommand(
		&cobra.Command{Use: "add <name>", Short: "Add an instrument", Args: cobra.ExactArgs(1), RunE: runPairAdd},
		&cobra.Command{Use: "list", Short: "List instruments", Args: cobra.NoArgs, RunE: runPairList},
		&cobra.Command{Use: "delete <pair-id>", Short: "Delete an instrument", Args: cobra.ExactArgs(1), RunE: runPairDelete},
	)
	fieldCmd.AddCommand(
		&cobra.Command{Use: "add <name>", Short: "Declare a custom field", Args: cobra.ExactArgs(1), RunE: runFieldAdd},
		&cobra.Command{Use: "list", Short: "List custom fields", Args: cobra.NoArgs, RunE: runFieldList},
		&cobra.Command{Use: "delete <field-id>", Short: "Delete a custom field", Args: cobra.ExactArgs(1), RunE: runFieldDelete},
	)

	templateAddCmd := &cobra.Command{Use: "add <name>", Short: "Create a template", Args: cobra.ExactArgs(1), RunE: runTemplateAdd}
	templateAddCmd.Flags().String("pair", "", "default instrument")
	templateAddCmd.Flags().String("type", "long", "default direction")
	templateAddCmd.Flags().Float64("lot", 0, "default lot size")
	templateAddCmd.Flags().Float64("rr", 0, "default risk/reward ratio")
	templateAddCmd.Flags().String("setup", "", "default setup")
	templateCmd.AddCommand(
		templateAddCmd,
		&cobra.Command{Use: "list", Short: "List templates", Args: cobra.NoArgs, RunE: runTemplateList},
		&cobra.Command{Use: "delete <template-id>", Short: "Delete a template", Args: cobra.ExactArgs(1), RunE: runTemplateDelete},
	)
}

func flagProfile(cmd *cobra.Command) string {
	p, _ := cmd.Flags().GetString("profile")
	return p
}

func runPairAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	p := &journal.Pair{ProfileID: flagProfile(cmd), Name: args[0]}
	if err := j.AddPair(p); err != nil {
		return err
	}
	fmt.Printf("added pair %s (%s)\n", p.Name, p.ID)
	return nil
}

func runPairList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	pairs, err := j.Pairs(flagProfile(cmd))
	if err != nil {
		return err
	}
	for _, p := range pairs {
		fmt.Printf("%s  %s\n", p.ID, p.Name)
	}
	return nil
}

func runPairDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()
	return j.DeletePair(args[0])
}

func runFieldAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	f := &journal.CustomField{ProfileID: flagProfile(cmd), Name: args[0]}
	if err := j.AddCustomField(f); err != nil {
		return err
	}
	fmt.Printf("added field %s (%s)\n", f.Name, f.ID)
	return nil
}

func runFieldList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	fields, err := j.CustomFields(flagProfile(cmd))
	if err != nil {
		return err
	}
	for _, f := range fields {
		fmt.Printf("%s  %s\n", f.ID, f.Name)
	}
	return nil
}

func runFieldDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()
	return j.DeleteCustomField(args[0])
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	pair, _ := cmd.Flags().GetString("pair")
	kind, _ := cmd.Flags().GetString("type")
	lot, _ := cmd.Flags().GetFloat64("lot")
	rr, _ := cmd.Flags().GetFloat64("rr")
	setup, _ := cmd.Flags().GetString("setup")

	t := &journal.Template{
		ProfileID:       flagProfile(cmd),
		Name:            args[0],
		Pair:            pair,
		Type:            journal.TradeType(kind),
		LotSize:         lot,
		RiskRewardRatio: rr,
		Setup:           setup,
	}
	if err := j.AddTemplate(t); err != nil {
		return err
	}
	fmt.Printf("added template %s (%s)\n", t.Name, t.ID)
	return nil
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	templates, err := j.Templates(flagProfile(cmd))
	if err != nil {
		return err
	}
	for _, t := range templates {
		fmt.Printf("%s  %-20s %s %s lot %.2f\n", t.ID, t.Name, t.Pair, t.Type, t.LotSize)
	}
	return nil
}

func runTemplateDelete(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()
	return j.DeleteTemplate(args[0])
}
