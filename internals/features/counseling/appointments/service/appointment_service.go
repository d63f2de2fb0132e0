package service

import (
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"guidanceku_backend/internals/features/counseling/appointments/model"
	helper "guidanceku_backend/internals/helpers"
	"guidanceku_backend/internals/helpers/dbtime"
)

// Office hours, inclusive on both ends.
const (
	OpenMinute  = 8 * 60  // 08:00
	CloseMinute = 17 * 60 // 17:00
)

// ValidateSlot checks the business rules for a requested slot: the date is
// not before today and the time falls inside office hours. Today itself is
// a valid date regardless of the current clock. Pure, so the rules are
// testable without a database.
func ValidateSlot(now time.Time, date time.Time, tod dbtime.Tod) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return helper.ErrPastDate
	}
	if m := tod.Minutes(); m < OpenMinute || m > CloseMinute {
		return helper.ErrOutOfHours
	}
	return nil
}

// slotTaken counts active appointments holding the same counselor/date/time.
func slotTaken(tx *gorm.DB, counselorID uuid.UUID, date time.Time, tod dbtime.Tod, exclude uuid.UUID) (bool, error) {
	q := tx.Model(&model.AppointmentModel{}).
		Where("counselor_id = ? AND date = ? AND time = ? AND status IN ?",
			counselorID, date.Format("2006-01-02"), tod, model.ActiveStatuses)
	if exclude != uuid.Nil {
		q = q.Where("id <> ?", exclude)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// isUniqueViolation detects the partial unique index on the slot firing
// under concurrent inserts.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// RequestAppointment books a pending appointment for the student. The check
// and the insert run in one serializable transaction; if a concurrent
// request slips past the count, the partial unique index still rejects it.
func RequestAppointment(db *gorm.DB, studentID, counselorID uuid.UUID, date time.Time, tod dbtime.Tod, purpose string) (*model.AppointmentModel, error) {
	if err := ValidateSlot(time.Now(), date, tod); err != nil {
		return nil, err
	}

	appt := &model.AppointmentModel{
		StudentID:   studentID,
		CounselorID: counselorID,
		Date:        date,
		Time:        tod,
		Purpose:     purpose,
		Status:      model.StatusPending,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := slotTaken(tx, counselorID, date, tod, uuid.Nil)
		if err != nil {
			return err
		}
		if taken {
			return helper.ErrDoubleBooking
		}
		return tx.Create(appt).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		// a concurrent insert slipped past the count and hit the index
		if isUniqueViolation(err) {
			log.Println("[WARN] concurrent booking rejected by unique index")
			return nil, helper.ErrConflict
		}
		return nil, err
	}
	return appt, nil
}

// Reschedule moves an appointment to a new slot. The slot rules and the
// double-booking check both run again, and the appointment goes back to
// pending so the counselor confirms the new time.
func Reschedule(db *gorm.DB, appt *model.AppointmentModel, date time.Time, tod dbtime.Tod) error {
	if !appt.CanReschedule() {
		return helper.ErrInvalidTransition
	}
	if err := ValidateSlot(time.Now(), date, tod); err != nil {
		return err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		taken, err := slotTaken(tx, appt.CounselorID, date, tod, appt.ID)
		if err != nil {
			return err
		}
		if taken {
			return helper.ErrDoubleBooking
		}
		appt.Date = date
		appt.Time = tod
		appt.Status = model.StatusPending
		return tx.Save(appt).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil && isUniqueViolation(err) {
		return helper.ErrConflict
	}
	return err
}

// UpdateStatus applies a guarded transition and persists it with an
// optimistic WHERE on the previous status, so two racing updates cannot
// both win.
func UpdateStatus(db *gorm.DB, appt *model.AppointmentModel, transition func(*model.AppointmentModel) error) error {
	prev := appt.Status
	if err := transition(appt); err != nil {
		return err
	}

	res := db.Model(&model.AppointmentModel{}).
		Where("id = ? AND status = ?", appt.ID, prev).
		Update("status", appt.Status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		appt.Status = prev
		return helper.ErrConflict
	}
	return nil
}
