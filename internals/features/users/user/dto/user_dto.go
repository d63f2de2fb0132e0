package dto

// Explicit typed inputs per operation. Request params are parsed and
// validated here before any domain row is touched.

type UpdateProfileInput struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `json:"last_name" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
}

type UpdateStudentInput struct {
	Course            string  `json:"course" validate:"required,max=100"`
	Year              int     `json:"year" validate:"required,min=1,max=10"`
	ContactNumber     *string `json:"contact_number" validate:"omitempty,max=15"`
	ReasonForReferral *string `json:"reason_for_referral"`
}
