package commands

import (
	"github.com/spf13/cobra"

	"github.com/nestegg-dev/nestegg/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nestegg",
		Short:   "Retirement balance projections",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newProjectCommand())
	rootCmd.AddCommand(newPlanCommand())

	return rootCmd
}
