package cmd

import (
	"github.com/huangsam/workpulse/core"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/spf13/cobra"
)

// classifyCmd categorizes the project working style.
var classifyCmd = &cobra.Command{
	Use:   "classify [repo-path]",
	Short: "Classify the project as organizational, community or uncertain.",
	Long: `Decide whether commit timing looks like employed office hours or
volunteer evening-and-weekend work.

The verdict drives how the other reports should be read: overtime on an
organizational project signals overwork, while the same pattern on a
community project is just hobby time.

Signals considered:
- Working-hours regularity of the daily first commits
- Weekend and evening commit shares
- Contributor count

Examples:
  # Classify the current repository
  workpulse classify

  # Classify a vendored open source dependency
  workpulse classify ~/src/some-oss-lib --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteClassify(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run classification", err)
		}
	},
}
