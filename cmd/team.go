package cmd

import (
	"github.com/huangsam/workpulse/core"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/spf13/cobra"
)

// teamCmd breaks down work intensity per contributor.
var teamCmd = &cobra.Command{
	Use:   "team [repo-path]",
	Short: "Break down work intensity per contributor against the team baseline.",
	Long: `Score every contributor against the team's own baseline end hour.

Each contributor with enough history gets an individual schedule estimate
and intensity index; the roster is ranked by index and each member is
placed below, near or above the team baseline. A team summary reports the
health level and distribution statistics, with warnings for concentrated
load or widespread overtime.

When an analysis backend is configured, every team run and contributor
score is recorded for trend tracking (see 'workpulse analysis').

Examples:
  # Rank contributors of the current repository
  workpulse team

  # Show only the top 10
  workpulse team --limit 10

  # Record scores for later export
  workpulse team --analysis-backend sqlite

  # Export the roster as Parquet
  workpulse team --output parquet --output-file team.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeam(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run team analysis", err)
		}
	},
}
