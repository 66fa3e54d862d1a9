package cmd

import (
	"github.com/huangsam/workpulse/core"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/spf13/cobra"
)

// scheduleCmd estimates the typical daily work schedule.
var scheduleCmd = &cobra.Command{
	Use:   "schedule [repo-path]",
	Short: "Estimate the typical daily work schedule from commit timing.",
	Long: `Estimate when the workday usually starts and ends based on commit timestamps.

The start hour comes from the earliest commits of each day, filtered to
weekday mornings so late-night sessions and weekend pushes don't drag the
estimate. The end hour is read from the observed evening activity decay,
falling back to a standard nine-hour day when the sample is too thin.

Use this to:
- Establish a working-hours baseline before measuring overtime
- Sanity-check a team's assumed schedule against reality
- Feed downstream intensity and late-night analysis

Examples:
  # Estimate the schedule of the current repository
  workpulse schedule

  # Analyze a specific repository over the last 90 days
  workpulse schedule ~/src/myrepo --start "90 days ago"

  # Skip detection with a known 9-to-6 schedule
  workpulse schedule --hours 9-18

  # Export the estimate as JSON
  workpulse schedule --output json --output-file schedule.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSchedule(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run schedule analysis", err)
		}
	},
}
