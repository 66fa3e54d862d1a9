package cmd

import (
	"github.com/huangsam/workpulse/core"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/spf13/cobra"
)

// overtimeCmd runs the full work intensity diagnosis.
var overtimeCmd = &cobra.Command{
	Use:   "overtime [repo-path]",
	Short: "Compute the work intensity index and overtime breakdown.",
	Long: `Run the full intensity diagnosis against the detected (or given) schedule.

Produces:
- The intensity index and its seven-tier label
- Weekday evening overtime with flagged hot weekdays
- Weekend activity, split into real work sessions and quick fixes
- Late-night activity across four severity bands

The --region flag enables holiday-aware workday classification, so a
commit on a public holiday counts as weekend-style activity rather than
a regular workday.

Examples:
  # Diagnose the current repository
  workpulse overtime

  # Diagnose with a manual 9-to-6 schedule
  workpulse overtime --hours 9-18

  # Treat US public holidays as non-workdays
  workpulse overtime --region US

  # Export the report for tracking
  workpulse overtime --output csv --output-file overtime.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOvertime(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run overtime analysis", err)
		}
	},
}
