package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nestegg-dev/nestegg/internal/config"
	"github.com/nestegg-dev/nestegg/internal/logging"
	"github.com/nestegg-dev/nestegg/internal/plan"
	"github.com/nestegg-dev/nestegg/internal/report"
)

func newProjectCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print year-by-year projected balances",
		Long: `Project a retirement account from the current age through the final age.

Settings come from --config, NESTEGG_* environment variables (for example
NESTEGG_PLAN_TAX_RATE) and flags, in increasing order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return runProject(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	addPlanFlags(cmd, &configPath)

	return cmd
}

func runProject(out, errOut io.Writer, cfg *config.Config) error {
	log, err := logging.New(errOut, cfg.Output.LogLevel)
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	pr, err := report.NewPrinter(cfg.Output.Locale)
	if err != nil {
		return err
	}

	p := cfg.Plan.Model()
	if err := plan.Check(p); err != nil {
		return err
	}

	log.Debug("projecting plan",
		zap.Int("current_age", p.CurrentAge),
		zap.Int("final_age", p.FinalAge),
		zap.Int("retirement_age", p.RetirementAge),
		zap.Stringer("current_balance", p.CurrentBalance),
	)

	r := report.New(p)

	log.Debug("projection complete",
		zap.Int("rows", len(r.Rows)),
		zap.Stringer("ending_balance", r.Summary.EndingBalance.RoundBank(2)),
	)
	if r.Summary.Depletes {
		log.Warn("balance goes negative", zap.Int("age", r.Summary.DepletionAge))
	}

	if err := r.Render(out, format, pr); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	return nil
}
