package service

import (
	"time"

	"gorm.io/gorm"

	followUpModel "guidanceku_backend/internals/features/counseling/followups/model"
	"guidanceku_backend/internals/features/counseling/interviews/dto"
	"guidanceku_backend/internals/features/counseling/interviews/model"
	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
	helper "guidanceku_backend/internals/helpers"
)

// SubmitInterviewForm writes the completed form, closes the session with
// the interview's notes, and schedules the follow-up when asked for — all
// in one transaction so a half-submitted form never survives. The session
// must still be running; the close runs as a conditional update so two
// racing submissions cannot both win.
func SubmitInterviewForm(db *gorm.DB, interview *model.InterviewModel, input *dto.SubmitInterviewInput) error {
	var session sessionModel.SessionModel
	if err := db.First(&session, "id = ?", interview.SessionID).Error; err != nil {
		return helper.ErrNotFound
	}
	if session.Status != sessionModel.SessionInProgress {
		return helper.ErrInvalidTransition
	}

	now := time.Now()

	birthDate, err := time.Parse("2006-01-02", input.BirthDate)
	if err != nil {
		return helper.ErrValidation
	}

	return db.Transaction(func(tx *gorm.DB) error {
		interview.Address = input.Address
		interview.ContactNumber = input.ContactNumber
		interview.BirthDate = &birthDate
		interview.BirthPlace = input.BirthPlace
		interview.Age = input.Age
		interview.CivilStatus = input.CivilStatus
		interview.Religion = input.Religion
		if len(input.FamilyBackground) > 0 {
			interview.FamilyBackground = input.FamilyBackground
		}
		interview.ParentsMaritalStatus = input.ParentsMaritalStatus
		interview.ElementarySchool = input.ElementarySchool
		interview.ElementaryYearGraduated = input.ElementaryYearGraduated
		interview.HighSchool = input.HighSchool
		interview.HighSchoolYearGraduated = input.HighSchoolYearGraduated
		interview.CollegeSchool = input.CollegeSchool
		interview.CollegeCourse = input.CollegeCourse
		interview.ReasonForInterview = input.ReasonForInterview
		interview.PresentingProblem = input.PresentingProblem
		interview.BackgroundOfProblem = input.BackgroundOfProblem
		interview.AcademicPerformance = input.AcademicPerformance
		interview.CounselorNotes = input.CounselorNotes
		interview.Recommendations = input.Recommendations
		interview.FollowUpNeeded = input.FollowUpNeeded

		if err := tx.Save(interview).Error; err != nil {
			return err
		}

		// close the session with the form's notes; conditional on it
		// still running
		updates := map[string]any{
			"status":            sessionModel.SessionCompleted,
			"ended_at":          now,
			"problem_statement": input.PresentingProblem,
		}
		if input.CounselorNotes != "" {
			updates["session_notes"] = input.CounselorNotes
		}
		if input.Recommendations != "" {
			updates["recommendations"] = input.Recommendations
		}

		res := tx.Model(&sessionModel.SessionModel{}).
			Where("id = ? AND status = ?", session.ID, sessionModel.SessionInProgress).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrConflict
		}

		if input.FollowUpNeeded {
			followUp := followUpModel.NewFromSession(session.ID, now, input.FollowUpNotes)
			if err := tx.Create(followUp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
