package constants

import (
	"fmt"
	"strings"
)

// Role is a closed set. Older revisions of this system compared free-text
// role strings and case mismatches ('Student' vs 'student') caused real bugs,
// so every role comparison in the codebase goes through this type.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCounselor Role = "counselor"
	RoleStudent   Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCounselor, RoleStudent:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole normalizes free-form input into a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "counselor":
		return RoleCounselor, nil
	case "student":
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Role error message templates
const (
	ErrOnlyAdminsCanAccess     = "❌ Only admins may access %s."
	ErrOnlyCounselorsCanAccess = "❌ Only counselors may access %s."
	ErrOnlyStudentsCanAccess   = "❌ Only students may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCounselor(feature string) string {
	return fmt.Sprintf(ErrOnlyCounselorsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}
