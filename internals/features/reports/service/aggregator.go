package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Table is the format-independent shape every writer consumes.
type Table struct {
	Title   string
	Period  string
	Headers []string
	Rows    [][]string
}

// PeriodLabel renders the reporting window the way every report shows it.
func PeriodLabel(start, end time.Time) string {
	return start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
}

/* ==========================
   ROW SHAPES
========================== */

type StudentSummary struct {
	Name         string
	Course       string
	Year         int
	SessionCount int
}

type SessionAnalytics struct {
	Day       time.Time
	Total     int
	Completed int
	Ongoing   int
}

type CounselorPerformance struct {
	Name      string
	Total     int
	Completed int
}

type CaseRecord struct {
	SessionID     uuid.UUID
	Student       string
	Status        string
	FollowUpCount int
	UpdatedAt     time.Time
}

/* ==========================
   PURE BUILDERS
========================== */

// BuildStudentSummaryTable lists every student with their session count for
// the period. A student is Active when they had at least one session.
func BuildStudentSummaryTable(period string, students []StudentSummary) Table {
	t := Table{
		Title:   "Student Summary Report",
		Period:  period,
		Headers: []string{"Student", "Course", "Year", "Sessions", "Status"},
	}
	for _, s := range students {
		status := "Inactive"
		if s.SessionCount > 0 {
			status = "Active"
		}
		t.Rows = append(t.Rows, []string{
			s.Name, s.Course, strconv.Itoa(s.Year), strconv.Itoa(s.SessionCount), status,
		})
	}
	return t
}

// BuildSessionAnalyticsTable breaks sessions down per calendar day: one row
// per day that had at least one session.
func BuildSessionAnalyticsTable(period string, stats []SessionAnalytics) Table {
	t := Table{
		Title:   "Session Analytics Report",
		Period:  period,
		Headers: []string{"Date", "Total Sessions", "Completed", "Ongoing"},
	}
	for _, s := range stats {
		t.Rows = append(t.Rows, []string{
			s.Day.Format("2006-01-02"),
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Completed),
			strconv.Itoa(s.Ongoing),
		})
	}
	return t
}

// BuildCounselorPerformanceTable shows each counselor's completion rate.
// A counselor with no sessions reads "0.0%" rather than dividing by zero.
func BuildCounselorPerformanceTable(period string, counselors []CounselorPerformance) Table {
	t := Table{
		Title:   "Counselor Performance Report",
		Period:  period,
		Headers: []string{"Counselor", "Total Sessions", "Completed", "Success Rate"},
	}
	for _, cp := range counselors {
		rate := "0.0%"
		if cp.Total > 0 {
			rate = fmt.Sprintf("%.1f%%", float64(cp.Completed)/float64(cp.Total)*100)
		}
		t.Rows = append(t.Rows, []string{
			cp.Name, strconv.Itoa(cp.Total), strconv.Itoa(cp.Completed), rate,
		})
	}
	return t
}

// BuildCaseManagementTable lists each counseling case with its reference
// code, derived from the session id.
func BuildCaseManagementTable(period string, cases []CaseRecord) Table {
	t := Table{
		Title:   "Case Management Report",
		Period:  period,
		Headers: []string{"Case ID", "Student", "Status", "Follow-Ups", "Last Updated"},
	}
	for _, cr := range cases {
		t.Rows = append(t.Rows, []string{
			CaseCode(cr.SessionID),
			cr.Student,
			titleCase(cr.Status),
			strconv.Itoa(cr.FollowUpCount),
			cr.UpdatedAt.Format("2006-01-02"),
		})
	}
	return t
}

// CaseCode renders the case reference shown on reports.
func CaseCode(sessionID uuid.UUID) string {
	return "CASE-" + strings.ToUpper(sessionID.String()[:8])
}

// titleCase turns "in_progress" into "In Progress".
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
