package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first of many", total: 45, page: 1, perPage: 20, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", total: 45, page: 2, perPage: 20, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", total: 45, page: 3, perPage: 20, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "empty result", total: 0, page: 1, perPage: 20, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "exact multiple", total: 40, page: 2, perPage: 20, totalPages: 2, hasNext: false, hasPrev: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tc.total, tc.page, tc.perPage)
			if p.TotalPages != tc.totalPages {
				t.Fatalf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.HasNext != tc.hasNext || p.HasPrev != tc.hasPrev {
				t.Fatalf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tc.hasNext, tc.hasPrev)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	cases := map[int]string{
		400: "BAD_REQUEST",
		401: "UNAUTHORIZED",
		403: "FORBIDDEN",
		404: "NOT_FOUND",
		409: "CONFLICT",
		422: "VALIDATION_ERROR",
		500: "INTERNAL_ERROR",
		418: "ERROR",
	}
	for status, want := range cases {
		if got := statusToErrorCode(status); got != want {
			t.Fatalf("statusToErrorCode(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestDomainErrorMapping(t *testing.T) {
	if ErrDoubleBooking.Status != 409 || ErrDoubleBooking.Code != "DOUBLE_BOOKED" {
		t.Fatalf("ErrDoubleBooking = %d/%s", ErrDoubleBooking.Status, ErrDoubleBooking.Code)
	}
	if ErrOutOfHours.Status != 422 {
		t.Fatalf("ErrOutOfHours.Status = %d, want 422", ErrOutOfHours.Status)
	}
	if ErrInvalidTransition.Status != 409 {
		t.Fatalf("ErrInvalidTransition.Status = %d, want 409", ErrInvalidTransition.Status)
	}
}
