package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
)

// PlaceholderText marks interview fields the counselor has not filled in
// yet. A placeholder row is created the moment a session starts so the form
// always exists.
const PlaceholderText = "To be updated"

// DefaultCivilStatus is the pre-filled civil status on a fresh form.
const DefaultCivilStatus = "Single"

type InterviewModel struct {
	ID        uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionID uuid.UUID                 `gorm:"type:uuid;uniqueIndex;not null" json:"session_id"`
	Session   sessionModel.SessionModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"session,omitempty"`

	// personal information
	Address       string     `gorm:"size:255;not null" json:"address"`
	ContactNumber string     `gorm:"size:15;not null" json:"contact_number"`
	BirthDate     *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	BirthPlace    string     `gorm:"size:255;not null" json:"birth_place"`
	Age           int        `gorm:"not null;default:0" json:"age"`
	CivilStatus   string     `gorm:"size:50;not null" json:"civil_status"`
	Religion      string     `gorm:"size:100;not null" json:"religion"`

	// family background; father/mother name, occupation and education live
	// in the JSONB blob
	FamilyBackground     datatypes.JSON `gorm:"type:jsonb" json:"family_background"`
	ParentsMaritalStatus string         `gorm:"size:100;not null" json:"parents_marital_status"`

	// educational background
	ElementarySchool        string `gorm:"size:255;not null" json:"elementary_school"`
	ElementaryYearGraduated string `gorm:"size:50;not null" json:"elementary_year_graduated"`
	HighSchool              string `gorm:"size:255;not null" json:"high_school"`
	HighSchoolYearGraduated string `gorm:"size:50;not null" json:"high_school_year_graduated"`
	CollegeSchool           string `gorm:"size:255" json:"college_school"`
	CollegeCourse           string `gorm:"size:255" json:"college_course"`

	// interview details
	ReasonForInterview  string `gorm:"type:text;not null" json:"reason_for_interview"`
	PresentingProblem   string `gorm:"type:text;not null" json:"presenting_problem"`
	BackgroundOfProblem string `gorm:"type:text;not null" json:"background_of_problem"`
	AcademicPerformance string `gorm:"type:text" json:"academic_performance"`
	CounselorNotes      string `gorm:"type:text" json:"counselor_notes"`
	Recommendations     string `gorm:"type:text" json:"recommendations"`
	FollowUpNeeded      bool   `gorm:"not null;default:false" json:"follow_up_needed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (InterviewModel) TableName() string {
	return "interviews"
}

// NewPlaceholder builds the sentinel interview row bound to a session.
// Age zero, a nil birth date and "To be updated" texts mean "not filled
// in yet"; civil status defaults to single.
func NewPlaceholder(sessionID uuid.UUID) *InterviewModel {
	return &InterviewModel{
		SessionID:               sessionID,
		Address:                 PlaceholderText,
		ContactNumber:           PlaceholderText,
		BirthPlace:              PlaceholderText,
		Age:                     0,
		CivilStatus:             DefaultCivilStatus,
		Religion:                PlaceholderText,
		FamilyBackground:        datatypes.JSON([]byte(`{}`)),
		ParentsMaritalStatus:    PlaceholderText,
		ElementarySchool:        PlaceholderText,
		ElementaryYearGraduated: PlaceholderText,
		HighSchool:              PlaceholderText,
		HighSchoolYearGraduated: PlaceholderText,
		ReasonForInterview:      PlaceholderText,
		PresentingProblem:       PlaceholderText,
		BackgroundOfProblem:     PlaceholderText,
	}
}

// IsPlaceholder reports whether the form still carries only sentinel values.
func (i *InterviewModel) IsPlaceholder() bool {
	return i.Age == 0 &&
		i.Address == PlaceholderText &&
		i.ContactNumber == PlaceholderText &&
		i.PresentingProblem == PlaceholderText
}
