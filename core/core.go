// Package core has core logic for schedule detection, intensity scoring and
// team analysis.
package core

import (
	"context"
	"time"

	"github.com/huangsam/workpulse/core/agg"
	"github.com/huangsam/workpulse/internal/contract"
	"github.com/huangsam/workpulse/internal/iocache"
	"github.com/huangsam/workpulse/internal/outwriter"
	"github.com/huangsam/workpulse/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// GetScheduleResult runs the aggregation pass and estimates the working schedule.
func GetScheduleResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.WorkScheduleEstimate, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return schema.WorkScheduleEstimate{}, err
	}
	return DetectSchedule(summary, cfg.ManualHours), nil
}

// GetOvertimeReport runs the full intensity diagnosis.
func GetOvertimeReport(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.OvertimeReport, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return schema.OvertimeReport{}, err
	}
	return buildOvertimeReport(ctx, cfg, summary), nil
}

// GetTimezoneResult runs the cross-timezone detection.
func GetTimezoneResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TimezoneAnalysis, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return schema.TimezoneAnalysis{}, err
	}
	return AnalyzeTimezone(summary), nil
}

// GetClassificationResult categorizes the project working style.
func GetClassificationResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.ClassificationResult, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return schema.ClassificationResult{}, err
	}
	return ClassifyProject(summary), nil
}

// GetTeamResult runs the per-contributor breakdown against the team baseline.
func GetTeamResult(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TeamAnalysis, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return schema.TeamAnalysis{}, err
	}

	results := AnalyzeContributors(cfg, summary)
	projectEst := DetectSchedule(summary, cfg.ManualHours)
	projectIndex := ComputeIntensity(summary, projectEst)
	return AnalyzeTeam(results, projectIndex.Index), nil
}

// GetDiagnosis computes every repository-level result in one pass. It backs
// the MCP diagnose tool and any caller that wants the full bundle without
// console formatting.
func GetDiagnosis(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.DiagnosisOutput, error) {
	client := contract.NewLocalGitClient()
	summary, err := agg.CachedAggregateActivity(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}
	report := buildOvertimeReport(ctx, cfg, summary)
	return &schema.DiagnosisOutput{
		Schedule:       report.Schedule,
		Intensity:      report.Intensity,
		Weekday:        report.Weekday,
		Weekend:        report.Weekend,
		LateNight:      report.LateNight,
		Timezone:       AnalyzeTimezone(summary),
		Classification: ClassifyProject(summary),
	}, nil
}

// buildOvertimeReport chains the schedule estimate through the index and
// the three overtime decompositions.
func buildOvertimeReport(ctx context.Context, cfg *contract.Config, summary *schema.ActivitySummary) schema.OvertimeReport {
	est := DetectSchedule(summary, cfg.ManualHours)
	oracle := contract.NewWorkdayOracle(cfg)
	return schema.OvertimeReport{
		Schedule:  est,
		Intensity: ComputeIntensity(summary, est),
		Weekday:   AnalyzeWeekdayOvertime(summary.WeekdayHours, est.EndHour),
		Weekend:   AnalyzeWeekendOvertime(ctx, summary, oracle),
		LateNight: AnalyzeLateNight(ctx, summary, est, oracle),
	}
}

// ExecuteSchedule estimates the working schedule and prints the result.
// It serves as the main entry point for the 'schedule' command.
func ExecuteSchedule(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	est, err := GetScheduleResult(ctx, cfg, iocache.Manager)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintSchedule(est, cfg, duration)
}

// ExecuteOvertime runs the full intensity diagnosis and prints the report.
// It serves as the main entry point for the 'overtime' command.
func ExecuteOvertime(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	report, err := GetOvertimeReport(ctx, cfg, iocache.Manager)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintOvertime(report, cfg, duration)
}

// ExecuteTimezone runs the cross-timezone detection and prints the result.
// It serves as the main entry point for the 'timezone' command.
func ExecuteTimezone(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	tz, err := GetTimezoneResult(ctx, cfg, iocache.Manager)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintTimezone(tz, cfg, duration)
}

// ExecuteClassify categorizes the project working style and prints the result.
// It serves as the main entry point for the 'classify' command.
func ExecuteClassify(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := GetClassificationResult(ctx, cfg, iocache.Manager)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintClassification(result, cfg, duration)
}

// ExecuteTeam runs the per-contributor breakdown and prints the roster.
// It serves as the main entry point for the 'team' command. When an analysis
// store is configured, the run and every contributor score are recorded.
func ExecuteTeam(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	team, err := GetTeamResult(ctx, cfg, iocache.Manager)
	if err != nil {
		return err
	}

	recordTeamAnalysis(cfg, start, team)

	if cfg.ResultLimit > 0 && len(team.Contributors) > cfg.ResultLimit {
		team.Contributors = team.Contributors[:cfg.ResultLimit]
	}
	duration := time.Since(start)
	return outwriter.PrintTeam(team, cfg, duration)
}

// recordTeamAnalysis persists one team run to the analysis store. Storage is
// best-effort; a failing store never blocks the printed report.
func recordTeamAnalysis(cfg *contract.Config, startTime time.Time, team schema.TeamAnalysis) {
	store := iocache.Manager.GetAnalysisStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"repo_path": cfg.RepoPath,
		"start":     cfg.GetAnalysisStartTime().Format(contract.DateTimeFormat),
		"end":       cfg.GetAnalysisEndTime().Format(contract.DateTimeFormat),
		"workers":   cfg.Workers,
	}
	analysisID, err := store.BeginAnalysis(startTime, params)
	if err != nil {
		contract.LogWarn("analysis store begin", err)
		return
	}

	recorded := 0
	now := time.Now()
	for _, c := range team.Contributors {
		record := schema.ContributorScoreRecord{
			AnalysisID:   analysisID,
			Contributor:  c.Name,
			AnalysisTime: now,
			Events:       int32(c.Events),
			Ratio:        int32(c.Intensity.Ratio),
			Index:        int32(c.Intensity.Index),
			Tier:         string(c.Intensity.Tier),
		}
		if c.Schedule != nil {
			record.StartHour = &c.Schedule.StartHour
			record.EndHour = &c.Schedule.EndHour
		}
		if err := store.RecordContributorScore(analysisID, record); err != nil {
			contract.LogWarn("analysis store record", err)
			continue
		}
		recorded++
	}

	if err := store.EndAnalysis(analysisID, time.Now(), recorded); err != nil {
		contract.LogWarn("analysis store end", err)
	}
}
