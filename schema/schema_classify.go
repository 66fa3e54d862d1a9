package schema

// ClassificationResult is the project-type verdict with its evidence trail.
type ClassificationResult struct {
	Category   ProjectCategory `json:"category"`
	Confidence int             `json:"confidence"` // 0-100

	Regularity     int     `json:"regularity"` // 0-100, 25 points per criterion
	WeekendRatio   float64 `json:"weekend_ratio"`
	MoonlightRatio float64 `json:"moonlight_ratio"`
	Contributors   int     `json:"contributors"`
	CommunityScore int     `json:"community_score"` // weighted fallback score

	Reasons []string `json:"reasons"` // human-readable reasoning trail
}
