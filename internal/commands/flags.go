package commands

import (
	"github.com/spf13/cobra"

	"github.com/nestegg-dev/nestegg/internal/config"
)

// addPlanFlags registers the flags that feed config.Loader. Defaults here
// are placeholders; only flags the user actually sets override other layers.
func addPlanFlags(cmd *cobra.Command, configPath *string) {
	f := cmd.Flags()
	f.StringVar(configPath, "config", "", "plan file (YAML)")

	f.Int("current-age", 0, "current age")
	f.Int("final-age", 0, "last age to project")
	f.Int("retirement-age", 0, "age at which withdrawals start")
	f.Float64("current-balance", 0, "current retirement account balance")
	f.Float64("yearly-contribution", 0, "amount contributed per year before retirement")
	f.Float64("yearly-return", 0, "yearly return before retirement as a percentage (e.g. 7 for 7%)")
	f.Float64("retirement-return", 0, "yearly return during retirement as a percentage (e.g. 4 for 4%)")
	f.Float64("withdrawal-rate", 0, "first-year withdrawal as a percentage of the balance (e.g. 4 for 4%)")
	f.Float64("withdrawal-increase", 0, "yearly increase of the withdrawal as a percentage (e.g. 2 for 2%)")
	f.Float64("tax-rate", 0, "tax rate on withdrawals as a percentage (e.g. 22 for 22%)")

	out := config.DefaultOutput()
	f.String("format", out.Format, "output format: table, csv or json")
	f.String("locale", out.Locale, "locale used to group digits in tables")
	f.String("log-level", out.LogLevel, "log level: debug, info, warn or error")
}

// loadConfig merges the plan file, environment and flags of cmd.
func loadConfig(cmd *cobra.Command, configPath string) (*config.Config, error) {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return loader.Load(configPath)
}
