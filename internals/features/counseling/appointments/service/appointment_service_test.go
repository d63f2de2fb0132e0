package service

import (
	"errors"
	"testing"
	"time"

	helper "guidanceku_backend/internals/helpers"
	"guidanceku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return tod
}

func TestValidateSlot(t *testing.T) {
	// fixed reference time: 2026-03-10 10:00
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		date time.Time
		tod  string
		want error
	}{
		{name: "opening edge accepted", date: tomorrow, tod: "08:00", want: nil},
		{name: "closing edge accepted", date: tomorrow, tod: "17:00", want: nil},
		{name: "one minute before opening", date: tomorrow, tod: "07:59", want: helper.ErrOutOfHours},
		{name: "one minute after closing", date: tomorrow, tod: "17:01", want: helper.ErrOutOfHours},
		{name: "mid-day accepted", date: tomorrow, tod: "13:30", want: nil},
		{name: "yesterday rejected", date: yesterday, tod: "10:00", want: helper.ErrPastDate},
		{name: "today at opening accepted", date: today, tod: "08:00", want: nil},
		{name: "earlier today accepted", date: today, tod: "09:00", want: nil},
		{name: "later today accepted", date: today, tod: "14:00", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSlot(now, tc.date, mustTod(t, tc.tod))
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("ValidateSlot = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateSlotPastBeatsWindow(t *testing.T) {
	// a past date with an out-of-hours time reports the past date first
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	if err := ValidateSlot(now, yesterday, mustTod(t, "22:00")); err != helper.ErrPastDate {
		t.Fatalf("ValidateSlot = %v, want ErrPastDate", err)
	}
}
