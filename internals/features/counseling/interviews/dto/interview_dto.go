package dto

import "gorm.io/datatypes"

// SubmitInterviewInput is the full interview form. Submitting it replaces
// the placeholder row created when the session started.
type SubmitInterviewInput struct {
	Address       string `json:"address" validate:"required,max=255"`
	ContactNumber string `json:"contact_number" validate:"required,max=15"`
	BirthDate     string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	BirthPlace    string `json:"birth_place" validate:"required,max=255"`
	Age           int    `json:"age" validate:"required,min=1,max=120"`
	CivilStatus   string `json:"civil_status" validate:"required,max=50"`
	Religion      string `json:"religion" validate:"required,max=100"`

	FamilyBackground     datatypes.JSON `json:"family_background"`
	ParentsMaritalStatus string         `json:"parents_marital_status" validate:"required,max=100"`

	ElementarySchool        string `json:"elementary_school" validate:"required,max=255"`
	ElementaryYearGraduated string `json:"elementary_year_graduated" validate:"required,max=50"`
	HighSchool              string `json:"high_school" validate:"required,max=255"`
	HighSchoolYearGraduated string `json:"high_school_year_graduated" validate:"required,max=50"`
	CollegeSchool           string `json:"college_school" validate:"max=255"`
	CollegeCourse           string `json:"college_course" validate:"max=255"`

	ReasonForInterview  string `json:"reason_for_interview" validate:"required"`
	PresentingProblem   string `json:"presenting_problem" validate:"required"`
	BackgroundOfProblem string `json:"background_of_problem" validate:"required"`
	AcademicPerformance string `json:"academic_performance"`
	CounselorNotes      string `json:"counselor_notes"`
	Recommendations     string `json:"recommendations"`
	FollowUpNeeded      bool   `json:"follow_up_needed"`
	FollowUpNotes       string `json:"follow_up_notes"`
}
