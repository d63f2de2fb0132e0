package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBuildCounselorPerformanceTable(t *testing.T) {
	table := BuildCounselorPerformanceTable("2026-01-01 to 2026-01-31", []CounselorPerformance{
		{Name: "Jordan Reyes", Total: 8, Completed: 6},
		{Name: "Sam Ocampo", Total: 0, Completed: 0},
		{Name: "Alex Tan", Total: 3, Completed: 3},
	})

	if len(table.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(table.Rows))
	}
	if got := table.Rows[0][3]; got != "75.0%" {
		t.Fatalf("success rate = %q, want 75.0%%", got)
	}
	// no sessions must not divide by zero
	if got := table.Rows[1][3]; got != "0.0%" {
		t.Fatalf("zero-session rate = %q, want 0.0%%", got)
	}
	if got := table.Rows[2][3]; got != "100.0%" {
		t.Fatalf("full rate = %q, want 100.0%%", got)
	}
}

func TestBuildStudentSummaryTable(t *testing.T) {
	table := BuildStudentSummaryTable("period", []StudentSummary{
		{Name: "Dana Cruz", Course: "BS Psychology", Year: 2, SessionCount: 4},
		{Name: "Lee Santos", Course: "BS Biology", Year: 1, SessionCount: 0},
	})

	if got := table.Rows[0][4]; got != "Active" {
		t.Fatalf("status = %q, want Active", got)
	}
	if got := table.Rows[1][4]; got != "Inactive" {
		t.Fatalf("status = %q, want Inactive", got)
	}
	if got := table.Rows[0][3]; got != "4" {
		t.Fatalf("session count = %q, want 4", got)
	}
}

func TestBuildCaseManagementTable(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")
	table := BuildCaseManagementTable("period", []CaseRecord{
		{
			SessionID:     id,
			Student:       "Dana Cruz",
			Status:        "in_progress",
			FollowUpCount: 2,
			UpdatedAt:     time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC),
		},
	})

	row := table.Rows[0]
	if row[0] != "CASE-A1B2C3D4" {
		t.Fatalf("case code = %q, want CASE-A1B2C3D4", row[0])
	}
	if row[2] != "In Progress" {
		t.Fatalf("status = %q, want In Progress", row[2])
	}
	if row[3] != "2" {
		t.Fatalf("follow-up count = %q, want 2", row[3])
	}
	if row[4] != "2026-02-14" {
		t.Fatalf("last updated = %q", row[4])
	}
}

func TestBuildSessionAnalyticsTable(t *testing.T) {
	table := BuildSessionAnalyticsTable("period", []SessionAnalytics{
		{Day: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), Total: 5, Completed: 3, Ongoing: 1},
		{Day: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Total: 1, Completed: 0, Ongoing: 1},
	})

	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	row := table.Rows[0]
	if row[0] != "2026-02-02" {
		t.Fatalf("day = %q", row[0])
	}
	if row[1] != "5" || row[2] != "3" || row[3] != "1" {
		t.Fatalf("counts = %v", row[1:])
	}
}

func TestCaseCode(t *testing.T) {
	id := uuid.MustParse("deadbeef-1111-2222-3333-444444444444")
	if got := CaseCode(id); got != "CASE-DEADBEEF" {
		t.Fatalf("CaseCode = %q", got)
	}
}

func TestPeriodLabel(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	if got := PeriodLabel(start, end); !strings.Contains(got, "2026-01-01") || !strings.Contains(got, "2026-01-31") {
		t.Fatalf("PeriodLabel = %q", got)
	}
}
