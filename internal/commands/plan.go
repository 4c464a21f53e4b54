package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nestegg-dev/nestegg/internal/config"
	"github.com/nestegg-dev/nestegg/internal/plan"
)

const defaultPlanFile = "plan.yaml"

func newPlanCommand() *cobra.Command {
	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan file operations",
	}
	planCmd.AddCommand(newPlanInitCommand())
	planCmd.AddCommand(newPlanCheckCommand())
	return planCmd
}

func newPlanInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a plan file with example values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultPlanFile
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote plan to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func newPlanCheckCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a plan without projecting it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}

			verrs := plan.Validate(cfg.Plan.Model())
			out := cmd.OutOrStdout()
			if len(verrs) == 0 {
				fmt.Fprintln(out, "plan is valid")
				return nil
			}
			for _, ve := range verrs {
				fmt.Fprintln(out, ve.Error())
			}
			return fmt.Errorf("plan has %d problem(s)", len(verrs))
		},
	}

	addPlanFlags(cmd, &configPath)

	return cmd
}
