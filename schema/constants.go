package schema

// Custom string types for type safety.
type (
	// DetectionMethod records which path produced a schedule estimate.
	DetectionMethod string

	// IntensityTier labels a work-intensity index value.
	IntensityTier string

	// ProjectCategory is the outcome of the project-type classification.
	ProjectCategory string

	// TeamHealth is a qualitative bucket of the team's median index.
	TeamHealth string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All detection methods supported.
const (
	ManualMethod   DetectionMethod = "manual"   // explicit --hours override
	ObservedMethod DetectionMethod = "observed" // backward decay scan found a breakpoint
	StandardMethod DetectionMethod = "standard" // start + 9h shift assumption
)

// All intensity tiers, ordered from lightest to heaviest.
const (
	UnderUtilizedTier IntensityTier = "under-utilized" // index <= 0
	BalancedTier      IntensityTier = "balanced"       // index <= 21
	MildTier          IntensityTier = "mild"           // index <= 48
	ModerateTier      IntensityTier = "moderate"       // index <= 63
	HeavyTier         IntensityTier = "heavy"          // index <= 100
	SevereTier        IntensityTier = "severe"         // index <= 130
	ExtremeTier       IntensityTier = "extreme"        // index > 130
)

// All project categories supported.
const (
	OrganizationalProject ProjectCategory = "organizational"
	CommunityProject      ProjectCategory = "community"
	UncertainProject      ProjectCategory = "uncertain"
)

// All team health levels supported.
const (
	HealthyTeam    TeamHealth = "healthy"    // median index <= 21
	StableTeam     TeamHealth = "stable"     // median index <= 63
	StrainedTeam   TeamHealth = "strained"   // median index <= 100
	OverloadedTeam TeamHealth = "overloaded" // median index > 100
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DateFormat is the calendar-day key format used across the data model.
const DateFormat = "2006-01-02"

// Start-time detection constants.
const (
	StartBandMinHour    = 5.0  // earliest plausible workday start
	StartBandMaxHour    = 12.0 // latest plausible workday start
	StartPercentileLow  = 0.10 // lower percentile of daily-first minutes
	StartPercentileHigh = 0.20 // upper percentile of daily-first minutes
	StartRoundMinutes   = 30   // round percentiles down to this mark
	StartRangeCapHours  = 1.0  // maximum width of the start range
	DefaultStartHour    = 9.0  // fallback with zero samples
	DefaultStartRangeHi = 9.5  // fallback range upper bound
)

// End-time detection constants.
const (
	StandardShiftHours    = 9.0  // standard shift length from detected start
	ObservedEndCutoffHour = 23   // backward scan starts here
	ObservedEndPeakShare  = 0.25 // sustained-activity threshold relative to peak
	MinObservedEndSamples = 10   // in-window events required to trust the scan
)

// Confidence scoring constants for the asymptotic form ceil(scale*n/(n+half)).
const (
	ConfidenceScale      = 90.0
	ConfidenceHalfSample = 50.0
)

// Work-intensity index constants.
const (
	NormalWindowHours = 9 // normal work is capped at 9 hours from start
	IndexMultiplier   = 3 // index = overtime ratio * 3
)

// Intensity tier breakpoints (inclusive upper bounds).
const (
	BalancedTierMax = 21
	MildTierMax     = 48
	ModerateTierMax = 63
	HeavyTierMax    = 100
	SevereTierMax   = 130
)

// Overtime decomposition constants.
const (
	WeekdayOvertimeFlagShare   = 0.90 // weekdays at >= 90% of the peak are flagged
	RealOvertimeMinActiveHours = 3    // distinct active hours separating real overtime from a quick fix
	LateBandStartHour          = 21   // [21, 23) late evening band
	MidnightBandStartHour      = 23   // [23, 24) midnight band
	DawnBandEndHour            = 6    // [0, 6) dawn band
)

// Cross-timezone detection constants.
const (
	OffsetDiversityFlagRatio = 0.01 // diversity ratio flag threshold
	SleepWindowFlagRatio     = 0.01 // sleep-window activity flag threshold
	SleepWindowHours         = 5    // width of the minimum-activity window
	TimezoneAgreementBoost   = 15   // added when both methods agree
	TimezoneConfidenceCap    = 95
	TopOffsetGroupLimit      = 5
)

// Project-type classifier constants.
const (
	RegularityCriterionPoints = 25   // each of the four regularity criteria
	MorningRiseMinGain        = 0.20 // second half of 06-12 must exceed first half by 20%
	NightShareCeiling         = 0.15 // events in 22:00-06:00 must stay below 15%
	MoonlightingFlagRatio     = 0.25 // evening share marking after-hours side work
	CommunityContributorCount = 50   // short-circuit to community at this many contributors
	CommunityRegularityMax    = 25   // short-circuit to community at or below this regularity
	CommunityScoreThreshold   = 60   // weighted score for a community verdict
	UncertainScoreThreshold   = 40   // weighted score floor for an uncertain verdict
)

// Team aggregation constants.
const (
	MinMedianDays          = 10   // days of samples required for median clock times
	MinMedianSamples       = 20   // or this many qualifying events
	DefaultBaselineEndHour = 18.0 // baseline when no contributor has a detected end
	BaselineTierMargin     = 2.0  // hours above baseline still counted as tier 2
	TierThreeWarningShare  = 0.30 // warn when tier 3 exists but is below this share
	IndexDivergenceWarning = 20   // warn when project and team median diverge by more
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GetIntensityTier maps a work-intensity index to its tier label.
func GetIntensityTier(index int) IntensityTier {
	switch {
	case index <= 0:
		return UnderUtilizedTier
	case index <= BalancedTierMax:
		return BalancedTier
	case index <= MildTierMax:
		return MildTier
	case index <= ModerateTierMax:
		return ModerateTier
	case index <= HeavyTierMax:
		return HeavyTier
	case index <= SevereTierMax:
		return SevereTier
	default:
		return ExtremeTier
	}
}

// GetTeamHealth maps the team's median index to a qualitative level.
func GetTeamHealth(medianIndex float64) TeamHealth {
	switch {
	case medianIndex <= BalancedTierMax:
		return HealthyTeam
	case medianIndex <= ModerateTierMax:
		return StableTeam
	case medianIndex <= HeavyTierMax:
		return StrainedTeam
	default:
		return OverloadedTeam
	}
}
