package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestScheduleDate(t *testing.T) {
	cases := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "plain offset",
			from: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
			want: time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses month boundary",
			from: time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses year boundary",
			from: time.Date(2025, 12, 20, 16, 45, 0, 0, time.UTC),
			want: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScheduleDate(tc.from)
			if !got.Equal(tc.want) {
				t.Fatalf("ScheduleDate(%v) = %v, want %v", tc.from, got, tc.want)
			}
		})
	}
}

func TestNewFromSession(t *testing.T) {
	sessionID := uuid.New()
	from := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

	fu := NewFromSession(sessionID, from, "")
	if fu.Notes != DefaultNote {
		t.Fatalf("Notes = %q, want default note", fu.Notes)
	}
	if fu.Completed {
		t.Fatal("new follow-up must not be completed")
	}
	if !fu.ScheduledDate.Equal(time.Date(2026, 3, 24, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ScheduledDate = %v", fu.ScheduledDate)
	}

	custom := NewFromSession(sessionID, from, "call the parents first")
	if custom.Notes != "call the parents first" {
		t.Fatalf("Notes = %q, custom note lost", custom.Notes)
	}
}
