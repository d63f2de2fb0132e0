package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewPlaceholder(t *testing.T) {
	sessionID := uuid.New()
	iv := NewPlaceholder(sessionID)

	if iv.SessionID != sessionID {
		t.Fatalf("SessionID = %s, want %s", iv.SessionID, sessionID)
	}
	if iv.Age != 0 {
		t.Fatalf("Age = %d, want 0", iv.Age)
	}
	if iv.BirthDate != nil {
		t.Fatalf("BirthDate = %v, want nil", iv.BirthDate)
	}
	if iv.CivilStatus != DefaultCivilStatus {
		t.Fatalf("CivilStatus = %q, want %q", iv.CivilStatus, DefaultCivilStatus)
	}
	for name, val := range map[string]string{
		"Address":                 iv.Address,
		"ContactNumber":           iv.ContactNumber,
		"BirthPlace":              iv.BirthPlace,
		"Religion":                iv.Religion,
		"ParentsMaritalStatus":    iv.ParentsMaritalStatus,
		"ElementarySchool":        iv.ElementarySchool,
		"ElementaryYearGraduated": iv.ElementaryYearGraduated,
		"HighSchool":              iv.HighSchool,
		"HighSchoolYearGraduated": iv.HighSchoolYearGraduated,
		"ReasonForInterview":      iv.ReasonForInterview,
		"PresentingProblem":       iv.PresentingProblem,
		"BackgroundOfProblem":     iv.BackgroundOfProblem,
	} {
		if val != PlaceholderText {
			t.Fatalf("%s = %q, want placeholder", name, val)
		}
	}
	if string(iv.FamilyBackground) != "{}" {
		t.Fatalf("FamilyBackground = %s, want {}", iv.FamilyBackground)
	}
	if !iv.IsPlaceholder() {
		t.Fatal("fresh placeholder not recognized")
	}
}

func TestIsPlaceholderAfterFill(t *testing.T) {
	iv := NewPlaceholder(uuid.New())
	iv.Age = 17
	iv.Address = "12 Main Street"
	iv.ContactNumber = "0812345678"
	iv.PresentingProblem = "exam anxiety"

	if iv.IsPlaceholder() {
		t.Fatal("filled form still reported as placeholder")
	}
}
