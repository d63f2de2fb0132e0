// file: internals/databases/migrate.go
package database

import (
	"log"

	apptModel "guidanceku_backend/internals/features/counseling/appointments/model"
	followUpModel "guidanceku_backend/internals/features/counseling/followups/model"
	interviewModel "guidanceku_backend/internals/features/counseling/interviews/model"
	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
	reportModel "guidanceku_backend/internals/features/reports/model"
	authModel "guidanceku_backend/internals/features/users/auth/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
)

// Migrate runs the schema migration for every table the app owns.
// Ordering matters: referenced tables first.
func Migrate() error {
	log.Println("[INFO] Running database migrations...")

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.StudentModel{},
		&userModel.CounselorModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&apptModel.AppointmentModel{},
		&sessionModel.SessionModel{},
		&interviewModel.InterviewModel{},
		&followUpModel.FollowUpModel{},
		&reportModel.ReportModel{},
	)
	if err != nil {
		return err
	}

	// Partial unique index: only pending/approved appointments occupy a
	// counselor's slot, so the database enforces the double-booking rule
	// even under concurrent inserts. AutoMigrate cannot express the WHERE.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_counselor_slot
		ON appointments (counselor_id, date, time)
		WHERE status IN ('pending', 'approved')`).Error
	if err != nil {
		return err
	}

	log.Println("[SUCCESS] Database migrations applied")
	return nil
}
