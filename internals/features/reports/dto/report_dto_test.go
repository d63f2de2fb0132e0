package dto

import (
	"testing"
	"time"
)

func TestResolvePeriodCustom(t *testing.T) {
	in := GenerateReportInput{PeriodStart: "2026-01-01", PeriodEnd: "2026-01-31"}
	start, end, err := in.ResolvePeriod(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if start.Format("2006-01-02") != "2026-01-01" || end.Format("2006-01-02") != "2026-01-31" {
		t.Fatalf("period = %v .. %v", start, end)
	}
}

func TestResolvePeriodRejectsInvertedRange(t *testing.T) {
	in := GenerateReportInput{PeriodStart: "2026-02-01", PeriodEnd: "2026-01-01"}
	if _, _, err := in.ResolvePeriod(time.Now()); err == nil {
		t.Fatal("inverted range accepted")
	}
}

func TestResolvePeriodNamedRanges(t *testing.T) {
	// Tuesday 2026-03-10
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		rng   string
		start string
		end   string
	}{
		{name: "this week runs Monday to Sunday", rng: RangeThisWeek, start: "2026-03-09", end: "2026-03-15"},
		{name: "this month", rng: RangeThisMonth, start: "2026-03-01", end: "2026-03-31"},
		{name: "last month", rng: RangeLastMonth, start: "2026-02-01", end: "2026-02-28"},
		{name: "this year", rng: RangeThisYear, start: "2026-01-01", end: "2026-12-31"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := GenerateReportInput{Range: tc.rng}
			start, end, err := in.ResolvePeriod(now)
			if err != nil {
				t.Fatal(err)
			}
			if start.Format("2006-01-02") != tc.start {
				t.Fatalf("start = %v, want %s", start, tc.start)
			}
			if end.Format("2006-01-02") != tc.end {
				t.Fatalf("end = %v, want %s", end, tc.end)
			}
		})
	}
}

func TestResolvePeriodUnknownRange(t *testing.T) {
	in := GenerateReportInput{Range: "next_decade"}
	if _, _, err := in.ResolvePeriod(time.Now()); err == nil {
		t.Fatal("unknown range accepted")
	}
}

func TestResolvePeriodMissingEverything(t *testing.T) {
	var in GenerateReportInput
	if _, _, err := in.ResolvePeriod(time.Now()); err == nil {
		t.Fatal("empty input accepted")
	}
}
