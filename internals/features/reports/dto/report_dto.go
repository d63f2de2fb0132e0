package dto

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Named reporting ranges, resolved against the submission day.
const (
	RangeThisWeek  = "this_week"
	RangeThisMonth = "this_month"
	RangeLastMonth = "last_month"
	RangeThisYear  = "this_year"
)

type GenerateReportInput struct {
	ReportType  string `json:"report_type" validate:"required"`
	Format      string `json:"format" validate:"required"`
	Range       string `json:"range"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

// ResolvePeriod turns either a named range or an explicit start/end pair
// into the inclusive reporting window.
func (in *GenerateReportInput) ResolvePeriod(now time.Time) (time.Time, time.Time, error) {
	if in.Range != "" {
		return namedRange(in.Range, now)
	}
	if in.PeriodStart == "" || in.PeriodEnd == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("either range or period_start and period_end are required")
	}

	start, err := time.Parse(dateLayout, in.PeriodStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("period_start must use the YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, in.PeriodEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("period_end must use the YYYY-MM-DD format")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("period_end must not be before period_start")
	}
	return start, end, nil
}

func namedRange(name string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch name {
	case RangeThisWeek:
		// week starts Monday
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case RangeThisMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil
	case RangeLastMonth:
		firstOfThis := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		start := firstOfThis.AddDate(0, -1, 0)
		return start, firstOfThis.AddDate(0, 0, -1), nil
	case RangeThisYear:
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(today.Year(), 12, 31, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown range %q", name)
}
