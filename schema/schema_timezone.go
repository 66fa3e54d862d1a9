package schema

// TimezoneAnalysis is the dual-method cross-timezone collaboration result.
type TimezoneAnalysis struct {
	CrossTimezone bool `json:"cross_timezone"`

	DiversityRatio float64 `json:"diversity_ratio"` // 1 - dominant offset share
	DiversityFlag  bool    `json:"diversity_flag"`

	SleepRatio  float64   `json:"sleep_ratio"` // events inside the quietest 5h window
	SleepFlag   bool      `json:"sleep_flag"`
	SleepWindow HourRange `json:"sleep_window"` // wrap-around window, End may exceed 24

	DominantOffset int           `json:"dominant_offset"` // minutes
	DominantShare  float64       `json:"dominant_share"`
	TopGroups      []OffsetGroup `json:"top_groups"` // at most 5, descending by count

	Confidence   int  `json:"confidence"`
	MethodsAgree bool `json:"methods_agree"`
	SampleCount  int  `json:"sample_count"`
}
