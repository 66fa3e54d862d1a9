package schema

// HourRange is a half-open clock-hour interval [Start, End).
type HourRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Width returns the range width in hours.
func (r HourRange) Width() float64 {
	return r.End - r.Start
}

// WorkScheduleEstimate is the inferred daily work schedule. Computed once, immutable.
type WorkScheduleEstimate struct {
	StartHour   float64         `json:"start_hour"`
	EndHour     float64         `json:"end_hour"`
	Confidence  int             `json:"confidence"` // 0-100
	SampleCount int             `json:"sample_count"`
	Method      DetectionMethod `json:"method"`
	StartRange  HourRange       `json:"start_range"`
	EndRange    HourRange       `json:"end_range"`
}

// NormalEndHour returns the end of the normal window, capped at 9 hours from start.
func (e WorkScheduleEstimate) NormalEndHour() float64 {
	capped := e.StartHour + NormalWindowHours
	if e.EndHour < capped {
		return e.EndHour
	}
	return capped
}

// IsWorkingHour reports whether the hour falls inside the normal window.
// Never classifies more than 9 hours as normal, even when the detected
// end is later.
func (e WorkScheduleEstimate) IsWorkingHour(hour float64) bool {
	return hour >= e.StartHour && hour < e.NormalEndHour()
}
