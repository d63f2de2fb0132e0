package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	apptModel "guidanceku_backend/internals/features/counseling/appointments/model"
	followUpModel "guidanceku_backend/internals/features/counseling/followups/model"
	interviewModel "guidanceku_backend/internals/features/counseling/interviews/model"
	"guidanceku_backend/internals/features/counseling/sessions/model"
	helper "guidanceku_backend/internals/helpers"
)

// StartFromAppointment turns an approved appointment into a running session.
// Everything happens in one transaction: the appointment is consumed with a
// conditional update (so two racing starts cannot both succeed), the session
// begins, and the placeholder interview form is created.
func StartFromAppointment(db *gorm.DB, appt *apptModel.AppointmentModel) (*model.SessionModel, error) {
	if appt.Status != apptModel.StatusApproved {
		return nil, helper.ErrInvalidTransition
	}

	now := time.Now()
	session := &model.SessionModel{
		AppointmentID:     &appt.ID,
		StudentID:         appt.StudentID,
		CounselorID:       appt.CounselorID,
		SessionType:      model.TypeInitial,
		Status:           model.SessionScheduled,
		ProblemStatement: appt.Purpose,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&apptModel.AppointmentModel{}).
			Where("id = ? AND status = ?", appt.ID, apptModel.StatusApproved).
			Update("status", apptModel.StatusCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrConflict
		}
		appt.Status = apptModel.StatusCompleted

		session.Start(now)
		if err := tx.Create(session).Error; err != nil {
			return err
		}

		return tx.Create(interviewModel.NewPlaceholder(session.ID)).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[SUCCESS] Session %s started from appointment %s\n", session.ID, appt.ID)
	return session, nil
}

// StartSession starts a scheduled session in place. A session that is not
// scheduled is left untouched; the repeated request is logged and the
// current row returned as-is.
func StartSession(db *gorm.DB, session *model.SessionModel) error {
	if !session.Start(time.Now()) {
		log.Printf("[WARN] Start ignored for session %s in status %s\n", session.ID, session.Status)
		return nil
	}
	return db.Save(session).Error
}

// EndSession completes a running session. Ending a session that is not in
// progress is a no-op, matching StartSession.
func EndSession(db *gorm.DB, session *model.SessionModel, outcome model.Outcome) error {
	if !session.End(time.Now(), outcome) {
		log.Printf("[WARN] End ignored for session %s in status %s\n", session.ID, session.Status)
		return nil
	}
	return db.Save(session).Error
}

// CancelSession rejects cancellation of finished sessions.
func CancelSession(db *gorm.DB, session *model.SessionModel) error {
	if err := session.Cancel(); err != nil {
		return err
	}
	return db.Save(session).Error
}

// StartFollowUpSession opens a new follow-up session from a scheduled
// follow-up and marks the follow-up completed, all in one transaction.
func StartFollowUpSession(db *gorm.DB, followUp *followUpModel.FollowUpModel) (*model.SessionModel, error) {
	if followUp.Completed {
		return nil, helper.ErrInvalidTransition
	}

	var parent model.SessionModel
	if err := db.First(&parent, "id = ?", followUp.SessionID).Error; err != nil {
		return nil, helper.ErrNotFound
	}

	now := time.Now()
	session := &model.SessionModel{
		StudentID:        parent.StudentID,
		CounselorID:      parent.CounselorID,
		SessionType:      model.TypeFollowUp,
		Status:           model.SessionScheduled,
		ProblemStatement: parent.ProblemStatement,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&followUpModel.FollowUpModel{}).
			Where("id = ? AND completed = false", followUp.ID).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return helper.ErrConflict
		}
		followUp.Completed = true

		session.Start(now)
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		return tx.Create(interviewModel.NewPlaceholder(session.ID)).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}
