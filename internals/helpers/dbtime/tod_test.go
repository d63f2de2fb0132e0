package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		minutes int
		wantErr bool
	}{
		{in: "08:00", want: "08:00", minutes: 480},
		{in: "17:00:00", want: "17:00", minutes: 1020},
		{in: "09:30", want: "09:30", minutes: 570},
		{in: "25:00", wantErr: true},
		{in: "bad", wantErr: true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("Parse(%q).String() = %q, want %q", tc.in, got.String(), tc.want)
		}
		if got.Minutes() != tc.minutes {
			t.Fatalf("Parse(%q).Minutes() = %d, want %d", tc.in, got.Minutes(), tc.minutes)
		}
	}
}

func TestValueFormat(t *testing.T) {
	tod, err := Parse("14:05")
	if err != nil {
		t.Fatal(err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "14:05:00" {
		t.Fatalf("Value() = %v, want 14:05:00", v)
	}
}

func TestScanDropsDate(t *testing.T) {
	var tod Tod
	if err := tod.Scan(time.Date(2025, 6, 1, 9, 15, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if tod.String() != "09:15" {
		t.Fatalf("String() = %q, want 09:15", tod.String())
	}
}

func TestMarshalJSON(t *testing.T) {
	tod, _ := Parse("08:00")
	b, err := tod.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"08:00"` {
		t.Fatalf("MarshalJSON = %s", b)
	}

	var zero Tod
	b, err = zero.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "null" {
		t.Fatalf("zero MarshalJSON = %s, want null", b)
	}
}
