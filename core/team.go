package core

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/schema"
)

// AnalyzeContributors re-runs the schedule and intensity pipeline on every
// contributor's event subset over a bounded worker pool. Results come back
// sorted by event count descending for stable presentation.
func AnalyzeContributors(cfg *contract.Config, summary *schema.ActivitySummary) []schema.ContributorResult {
	names := make([]string, 0, len(summary.ByContributor))
	for name := range summary.ByContributor {
		names = append(names, name)
	}
	slices.Sort(names)

	nameCh := make(chan string, len(names))
	resultCh := make(chan schema.ContributorResult, len(names))
	var wg sync.WaitGroup

	for range cfg.Workers {
		wg.Go(func() {
			for name := range nameCh {
				resultCh <- analyzeContributor(name, summary.ByContributor[name])
			}
		})
	}

	for _, name := range names {
		nameCh <- name
	}
	close(nameCh)
	wg.Wait()
	close(resultCh)

	results := make([]schema.ContributorResult, 0, len(names))
	for r := range resultCh {
		results = append(results, r)
	}
	slices.SortFunc(results, func(a, b schema.ContributorResult) int {
		if a.Events != b.Events {
			return b.Events - a.Events
		}
		return strings.Compare(a.Name, b.Name)
	})
	return results
}

// analyzeContributor runs detection and the index on one contributor subset.
// The schedule is only attached when the contributor has enough first/last
// samples for reliable median clock times; it is omitted, never defaulted.
func analyzeContributor(name string, sub *schema.ActivitySummary) schema.ContributorResult {
	result := schema.ContributorResult{
		Name:   name,
		Events: sub.TotalEvents,
	}

	est := DetectSchedule(sub, nil)
	result.Intensity = ComputeIntensity(sub, est)

	days := len(sub.DailyTotals)
	samples := len(sub.DailyFirsts) + len(sub.DailyLasts)
	if days >= schema.MinMedianDays || samples >= schema.MinMedianSamples {
		result.Schedule = &est
	}
	return result
}

// ComputeBaselineEndHour returns the 50th percentile of all contributors'
// detected end hours, or the 18:00 default when none have a schedule.
func ComputeBaselineEndHour(results []schema.ContributorResult) float64 {
	ends := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Schedule != nil {
			ends = append(ends, r.Schedule.EndHour)
		}
	}
	if len(ends) == 0 {
		return schema.DefaultBaselineEndHour
	}
	return percentile(ends, 0.5)
}

// ReclassifyTiers assigns each contributor one of the three ordered tiers by
// comparing the detected end hour against the baseline. It operates on a
// copy and is idempotent: identical inputs and baseline always yield
// identical tiers. Contributors without a detected schedule stay unclassified.
func ReclassifyTiers(results []schema.ContributorResult, baseline float64) []schema.ContributorResult {
	classified := slices.Clone(results)
	for i, r := range classified {
		if r.Schedule == nil {
			classified[i].Tier = schema.NoTier
			continue
		}
		switch {
		case r.Schedule.EndHour < baseline:
			classified[i].Tier = schema.BelowBaselineTier
		case r.Schedule.EndHour <= baseline+schema.BaselineTierMargin:
			classified[i].Tier = schema.NearBaselineTier
		default:
			classified[i].Tier = schema.AboveBaselineTier
		}
	}
	return classified
}

// AnalyzeTeam computes the baseline, reclassifies every contributor against
// it, and derives team-level percentiles, health and warnings.
// projectIndex is the aggregate repository index used for the divergence check.
func AnalyzeTeam(results []schema.ContributorResult, projectIndex int) schema.TeamAnalysis {
	baseline := ComputeBaselineEndHour(results)
	classified := ReclassifyTiers(results, baseline)

	indexes := make([]float64, 0, len(classified))
	for _, r := range classified {
		indexes = append(indexes, float64(r.Intensity.Index))
	}

	team := schema.TeamAnalysis{
		Contributors:    classified,
		BaselineEndHour: baseline,
		MeanIndex:       mean(indexes),
		MedianIndex:     percentile(indexes, 0.50),
		P25Index:        percentile(indexes, 0.25),
		P75Index:        percentile(indexes, 0.75),
		P90Index:        percentile(indexes, 0.90),
	}
	team.Health = schema.GetTeamHealth(team.MedianIndex)
	team.Warnings = teamWarnings(classified, team.MedianIndex, projectIndex)
	return team
}

// teamWarnings raises the two structural warnings: a small but non-empty
// tier-3 group, and a large gap between the project index and the team median.
func teamWarnings(classified []schema.ContributorResult, medianIndex float64, projectIndex int) []string {
	var warnings []string

	if len(classified) > 0 {
		tierThree := 0
		for _, r := range classified {
			if r.Tier == schema.AboveBaselineTier {
				tierThree++
			}
		}
		share := float64(tierThree) / float64(len(classified))
		if tierThree > 0 && share < schema.TierThreeWarningShare {
			warnings = append(warnings, fmt.Sprintf(
				"%d of %d contributors work well past the team baseline; the load is concentrated, not shared",
				tierThree, len(classified)))
		}
	}

	if diff := float64(projectIndex) - medianIndex; diff > schema.IndexDivergenceWarning || diff < -schema.IndexDivergenceWarning {
		warnings = append(warnings, fmt.Sprintf(
			"project index %d diverges from the team median %.0f by more than %d points",
			projectIndex, medianIndex, schema.IndexDivergenceWarning))
	}

	return warnings
}
