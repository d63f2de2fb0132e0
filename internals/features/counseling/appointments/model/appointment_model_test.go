package model

import (
	"testing"

	helper "guidanceku_backend/internals/helpers"
)

func TestApprove(t *testing.T) {
	cases := []struct {
		from    string
		wantErr bool
	}{
		{from: StatusPending, wantErr: false},
		{from: StatusApproved, wantErr: true},
		{from: StatusDeclined, wantErr: true},
		{from: StatusCancelled, wantErr: true},
		{from: StatusCompleted, wantErr: true},
	}

	for _, tc := range cases {
		appt := AppointmentModel{Status: tc.from}
		err := appt.Approve()
		if tc.wantErr {
			if err != helper.ErrInvalidTransition {
				t.Fatalf("Approve from %s: err = %v, want ErrInvalidTransition", tc.from, err)
			}
			if appt.Status != tc.from {
				t.Fatalf("Approve from %s mutated status to %s", tc.from, appt.Status)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Approve from %s: %v", tc.from, err)
		}
		if appt.Status != StatusApproved {
			t.Fatalf("Approve from %s: status = %s", tc.from, appt.Status)
		}
	}
}

func TestDecline(t *testing.T) {
	appt := AppointmentModel{Status: StatusPending}
	if err := appt.Decline(); err != nil {
		t.Fatal(err)
	}
	if appt.Status != StatusDeclined {
		t.Fatalf("status = %s, want declined", appt.Status)
	}

	// already decided
	if err := appt.Decline(); err != helper.ErrInvalidTransition {
		t.Fatalf("second Decline: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancel(t *testing.T) {
	appt := AppointmentModel{Status: StatusPending}
	if err := appt.Cancel(); err != nil {
		t.Fatalf("Cancel from pending: %v", err)
	}
	if appt.Status != StatusCancelled {
		t.Fatalf("Cancel from pending: status = %s", appt.Status)
	}

	// cancel is a pending-only escape hatch
	for _, from := range []string{StatusApproved, StatusDeclined, StatusCancelled, StatusCompleted} {
		appt := AppointmentModel{Status: from}
		if err := appt.Cancel(); err != helper.ErrInvalidTransition {
			t.Fatalf("Cancel from %s: err = %v, want ErrInvalidTransition", from, err)
		}
		if appt.Status != from {
			t.Fatalf("Cancel from %s mutated status to %s", from, appt.Status)
		}
	}
}

func TestCanReschedule(t *testing.T) {
	can := map[string]bool{
		StatusPending:   true,
		StatusApproved:  true,
		StatusDeclined:  true,
		StatusCancelled: false,
		StatusCompleted: false,
	}
	for status, want := range can {
		appt := AppointmentModel{Status: status}
		if appt.CanReschedule() != want {
			t.Fatalf("CanReschedule(%s) = %v, want %v", status, appt.CanReschedule(), want)
		}
	}
}

func TestComplete(t *testing.T) {
	appt := AppointmentModel{Status: StatusApproved}
	if err := appt.Complete(); err != nil {
		t.Fatal(err)
	}
	if appt.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", appt.Status)
	}

	pending := AppointmentModel{Status: StatusPending}
	if err := pending.Complete(); err != helper.ErrInvalidTransition {
		t.Fatalf("Complete from pending: err = %v, want ErrInvalidTransition", err)
	}
}

func TestIsActive(t *testing.T) {
	active := map[string]bool{
		StatusPending:   true,
		StatusApproved:  true,
		StatusDeclined:  false,
		StatusCancelled: false,
		StatusCompleted: false,
	}
	for status, want := range active {
		appt := AppointmentModel{Status: status}
		if appt.IsActive() != want {
			t.Fatalf("IsActive(%s) = %v, want %v", status, appt.IsActive(), want)
		}
	}
}
