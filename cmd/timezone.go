package cmd

import (
	"github.com/huangsam/workpulse/core"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/spf13/cobra"
)

// timezoneCmd detects cross-timezone collaboration.
var timezoneCmd = &cobra.Command{
	Use:   "timezone [repo-path]",
	Short: "Detect whether the project spans multiple timezones.",
	Long: `Check whether commit activity suggests a distributed, cross-timezone team.

Two independent signals are combined:
- Offset diversity: the share of commits authored outside the dominant
  UTC offset
- Quiet window coverage: activity inside the quietest five-hour stretch
  of the day, which a single-timezone team leaves empty

Cross-timezone projects distort schedule and overtime estimates, so the
verdict here tells you how much to trust the other analyses.

Examples:
  # Check the current repository
  workpulse timezone

  # Check a specific repository as JSON
  workpulse timezone ~/src/myrepo --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimezone(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run timezone analysis", err)
		}
	},
}
