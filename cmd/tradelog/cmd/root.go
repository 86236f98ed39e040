package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wzgold/tradelog/analytics"
	"github.com/wzgold/tradelog/config"
	"github.com/wzgold/tradelog/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A local trading journal with balance and performance analytics",
	Long: `Tradelog is a personal trading journal backed by a local SQLite database.

It provides tools for:
  - Recording trades, deposits and withdrawals per profile
  - Reconstructing the account balance curve from the journal
  - Win/loss, profit-factor and risk/reward statistics
  - Filtering everything by daily/weekly/monthly/yearly periods
  - Attaching before/after screenshots to trades`,
	SilenceUsage: true,
}

var (
	cfgFile string
	cfg     *config.Config
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("db", "", "path to the journal database")
	rootCmd.PersistentFlags().String("user", "", "current user id")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.LoadFromFile(cfgFile)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		if db, _ := cmd.Flags().GetString("db"); db != "" {
			cfg.DBPath = db
		}
		if user, _ := cmd.Flags().GetString("user"); user != "" {
			cfg.User = user
		}
		return nil
	}
}

func openJournal() (*journal.Journal, error) {
	j, err := journal.Open(cfg.DBPath, cfg.User)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return j, nil
}

func activePeriod(flag string) (analytics.Period, error) {
	if flag == "" {
		flag = cfg.Period
	}
	return analytics.ParsePeriod(flag)
}

// profileCurrency resolves the display currency for a profile, falling back
// to the configured default when the profile is unknown.
func profileCurrency(j *journal.Journal, profileID string) journal.Currency {
	p, err := j.GetProfile(profileID)
	if err != nil || p == nil {
		return journal.Currency(cfg.Currency)
	}
	return p.Currency
}

// parseWhen accepts a few common timestamp formats, defaulting to now.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
