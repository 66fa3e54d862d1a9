package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/maypok86/otter/v2"

	"github.com/huangsam/workpulse/schema"
)

// FixedCalendar applies the pure Mon-Fri workday rule with no holiday data.
type FixedCalendar struct{}

var _ WorkdayOracle = FixedCalendar{} // Compile-time check

// Classify implements the WorkdayOracle interface.
func (FixedCalendar) Classify(_ context.Context, dates []string) (map[string]bool, error) {
	classified := make(map[string]bool, len(dates))
	for _, date := range dates {
		day, err := time.Parse(schema.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		wd := day.Weekday()
		classified[date] = wd != time.Saturday && wd != time.Sunday
	}
	return classified, nil
}

// holidayAPIBase is the public-holiday endpoint, queried once per (region, year).
const holidayAPIBase = "https://date.nager.at/api/v3/PublicHolidays"

// HTTPOracle resolves workdays against a public-holiday HTTP API for one
// region. Year responses are cached for the lifetime of the oracle, which is
// scoped to a single analysis run, so repeated date lookups cost one request
// per calendar year at most.
type HTTPOracle struct {
	region string
	client *http.Client
	years  *otter.Cache[int, map[string]bool] // year -> holiday date set
}

var _ WorkdayOracle = &HTTPOracle{} // Compile-time check

// NewHTTPOracle creates an oracle for the given ISO 3166-1 alpha-2 region.
func NewHTTPOracle(region string) *HTTPOracle {
	return &HTTPOracle{
		region: region,
		client: &http.Client{Timeout: 10 * time.Second},
		years:  otter.Must(&otter.Options[int, map[string]bool]{MaximumSize: 16}),
	}
}

// NewWorkdayOracle returns the holiday-aware oracle when a region is
// configured, falling back to the fixed calendar otherwise.
func NewWorkdayOracle(cfg *Config) WorkdayOracle {
	if cfg.HolidayRegion == "" {
		return FixedCalendar{}
	}
	return NewHTTPOracle(cfg.HolidayRegion)
}

// Classify implements the WorkdayOracle interface. Saturdays and Sundays are
// rest days; weekdays are workdays unless the region observes a holiday.
func (o *HTTPOracle) Classify(ctx context.Context, dates []string) (map[string]bool, error) {
	classified := make(map[string]bool, len(dates))
	for _, date := range dates {
		day, err := time.Parse(schema.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", date, err)
		}
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			classified[date] = false
			continue
		}
		holidays, err := o.holidaysForYear(ctx, day.Year())
		if err != nil {
			return nil, err
		}
		classified[date] = !holidays[date]
	}
	return classified, nil
}

// holidaysForYear fetches and caches the holiday set for one calendar year.
func (o *HTTPOracle) holidaysForYear(ctx context.Context, year int) (map[string]bool, error) {
	if cached, ok := o.years.GetIfPresent(year); ok {
		return cached, nil
	}

	url := fmt.Sprintf("%s/%d/%s", holidayAPIBase, year, o.region)
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := o.client.Do(req)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("holiday API returned status %d for region %s", resp.StatusCode, o.region)
			}
			body, err = io.ReadAll(resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.BackOffDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("holiday lookup failed for %d/%s: %w", year, o.region, err)
	}

	var payload []struct {
		Date string `json:"date"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("holiday API returned malformed payload: %w", err)
	}

	holidays := make(map[string]bool, len(payload))
	for _, h := range payload {
		holidays[h.Date] = true
	}
	o.years.Set(year, holidays)
	return holidays, nil
}
