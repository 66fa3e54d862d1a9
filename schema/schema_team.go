package schema

// ContributorTier is the ordered intensity tier relative to the team baseline.
type ContributorTier int

// All contributor tiers, relative to the baseline end-hour.
const (
	NoTier            ContributorTier = 0 // not yet classified
	BelowBaselineTier ContributorTier = 1 // detected end below baseline
	NearBaselineTier  ContributorTier = 2 // within baseline + 2h
	AboveBaselineTier ContributorTier = 3 // beyond baseline + 2h
)

// ContributorResult is the per-contributor pipeline output.
// Schedule is nil when the contributor lacks enough samples for
// reliable median clock times.
type ContributorResult struct {
	Name      string                `json:"name"`
	Events    int                   `json:"events"`
	Schedule  *WorkScheduleEstimate `json:"schedule,omitempty"`
	Intensity OvertimeIndexResult   `json:"intensity"`
	Tier      ContributorTier       `json:"tier"`
}

// TeamAnalysis aggregates contributor results against a team baseline.
type TeamAnalysis struct {
	Contributors    []ContributorResult `json:"contributors"`
	BaselineEndHour float64             `json:"baseline_end_hour"` // P50 of detected end hours

	MeanIndex   float64 `json:"mean_index"`
	MedianIndex float64 `json:"median_index"`
	P25Index    float64 `json:"p25_index"`
	P75Index    float64 `json:"p75_index"`
	P90Index    float64 `json:"p90_index"`

	Health   TeamHealth `json:"health"`
	Warnings []string   `json:"warnings"`
}
