package model

import (
	"testing"
	"time"

	helper "guidanceku_backend/internals/helpers"
)

func TestStart(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	s := SessionModel{Status: SessionScheduled}
	if !s.Start(now) {
		t.Fatal("Start from scheduled did not fire")
	}
	if s.Status != SessionInProgress {
		t.Fatalf("status = %s, want in_progress", s.Status)
	}
	if s.StartedAt == nil || !s.StartedAt.Equal(now) {
		t.Fatalf("StartedAt = %v, want %v", s.StartedAt, now)
	}

	// starting again is a no-op that leaves the row untouched
	later := now.Add(time.Hour)
	if s.Start(later) {
		t.Fatal("second Start fired")
	}
	if !s.StartedAt.Equal(now) {
		t.Fatalf("second Start moved StartedAt to %v", s.StartedAt)
	}
}

func TestStartIgnoredFromOtherStates(t *testing.T) {
	now := time.Now()
	for _, status := range []string{SessionInProgress, SessionCompleted, SessionCancelled} {
		s := SessionModel{Status: status}
		if s.Start(now) {
			t.Fatalf("Start fired from %s", status)
		}
		if s.Status != status || s.StartedAt != nil {
			t.Fatalf("Start from %s mutated the session", status)
		}
	}
}

func TestEnd(t *testing.T) {
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ended := started.Add(45 * time.Minute)

	s := SessionModel{
		Status:       SessionInProgress,
		StartedAt:    &started,
		SessionNotes: "initial observations",
	}
	outcome := Outcome{
		ProblemStatement: "exam anxiety",
		Recommendations:  "weekly check-in",
		Notes:            "final notes",
		ActionItems:      "practice breathing exercises",
		NextSteps:        "schedule follow-up",
	}
	if !s.End(ended, outcome) {
		t.Fatal("End from in_progress did not fire")
	}
	if s.Status != SessionCompleted {
		t.Fatalf("status = %s, want completed", s.Status)
	}
	if s.ProblemStatement != "exam anxiety" {
		t.Fatalf("ProblemStatement = %q", s.ProblemStatement)
	}
	if s.SessionNotes != "final notes" || s.Recommendations != "weekly check-in" {
		t.Fatalf("notes not applied: %q / %q", s.SessionNotes, s.Recommendations)
	}
	if s.ActionItems != "practice breathing exercises" {
		t.Fatalf("ActionItems = %q", s.ActionItems)
	}
	if s.NextSteps != "schedule follow-up" {
		t.Fatalf("NextSteps = %q", s.NextSteps)
	}
	if s.Duration() != 45*time.Minute {
		t.Fatalf("Duration = %v, want 45m", s.Duration())
	}
}

func TestEndBlankFieldsKeepExisting(t *testing.T) {
	started := time.Now()
	s := SessionModel{
		Status:           SessionInProgress,
		StartedAt:        &started,
		ProblemStatement: "stated at intake",
		SessionNotes:     "already written",
		Recommendations:  "keep this",
		ActionItems:      "existing items",
		NextSteps:        "existing steps",
	}
	if !s.End(started.Add(time.Hour), Outcome{}) {
		t.Fatal("End did not fire")
	}
	if s.ProblemStatement != "stated at intake" {
		t.Fatalf("blank outcome wiped problem statement: %q", s.ProblemStatement)
	}
	if s.SessionNotes != "already written" {
		t.Fatalf("blank notes wiped stored notes: %q", s.SessionNotes)
	}
	if s.Recommendations != "keep this" {
		t.Fatalf("blank recommendations wiped stored value: %q", s.Recommendations)
	}
	if s.ActionItems != "existing items" || s.NextSteps != "existing steps" {
		t.Fatalf("blank outcome wiped stored fields: %q / %q", s.ActionItems, s.NextSteps)
	}
}

func TestEndIgnoredWhenNotRunning(t *testing.T) {
	for _, status := range []string{SessionScheduled, SessionCompleted, SessionCancelled} {
		s := SessionModel{Status: status}
		if s.End(time.Now(), Outcome{Notes: "notes"}) {
			t.Fatalf("End fired from %s", status)
		}
		if s.Status != status {
			t.Fatalf("End from %s mutated status to %s", status, s.Status)
		}
	}
}

func TestCancel(t *testing.T) {
	for _, status := range []string{SessionScheduled, SessionInProgress} {
		s := SessionModel{Status: status}
		if err := s.Cancel(); err != nil {
			t.Fatalf("Cancel from %s: %v", status, err)
		}
		if s.Status != SessionCancelled {
			t.Fatalf("Cancel from %s: status = %s", status, s.Status)
		}
	}

	for _, status := range []string{SessionCompleted, SessionCancelled} {
		s := SessionModel{Status: status}
		if err := s.Cancel(); err != helper.ErrInvalidTransition {
			t.Fatalf("Cancel from %s: err = %v, want ErrInvalidTransition", status, err)
		}
	}
}

func TestDurationIncomplete(t *testing.T) {
	started := time.Now()
	cases := []SessionModel{
		{},
		{StartedAt: &started},
	}
	for i, s := range cases {
		if d := s.Duration(); d != 0 {
			t.Fatalf("case %d: Duration = %v, want 0", i, d)
		}
	}
}
