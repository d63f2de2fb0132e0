package constants

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "admin", want: RoleAdmin},
		{in: "counselor", want: RoleCounselor},
		{in: "student", want: RoleStudent},
		// case variants must normalize instead of slipping through
		{in: "Student", want: RoleStudent},
		{in: "ADMIN", want: RoleAdmin},
		{in: " counselor ", want: RoleCounselor},
		{in: "teacher", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRole(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleCounselor, RoleStudent} {
		if !r.Valid() {
			t.Fatalf("%v reported invalid", r)
		}
	}
	if Role("teacher").Valid() {
		t.Fatal("unknown role reported valid")
	}
}
