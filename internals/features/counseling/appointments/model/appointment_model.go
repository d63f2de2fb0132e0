package model

import (
	"time"

	"github.com/google/uuid"

	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
	"guidanceku_backend/internals/helpers/dbtime"
)

// Appointment lifecycle. Only pending and approved occupy the counselor's
// slot; declined/cancelled free it up again.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses are the states that block a counselor's slot.
var ActiveStatuses = []string{StatusPending, StatusApproved}

type AppointmentModel struct {
	ID          uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   uuid.UUID                `gorm:"type:uuid;not null;index" json:"student_id"`
	Student     userModel.StudentModel   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	CounselorID uuid.UUID                `gorm:"type:uuid;not null;index:idx_counselor_slot" json:"counselor_id"`
	Counselor   userModel.CounselorModel `gorm:"foreignKey:CounselorID;constraint:OnDelete:CASCADE" json:"counselor,omitempty"`
	Date        time.Time                `gorm:"type:date;not null;index:idx_counselor_slot" json:"date"`
	Time        dbtime.Tod               `gorm:"type:time;not null;index:idx_counselor_slot" json:"time"`
	Purpose     string                   `gorm:"type:text;not null" json:"purpose"`
	Status      string                   `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	CreatedAt   time.Time                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment still occupies its slot.
func (a *AppointmentModel) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusApproved
}

// CanReschedule: a completed or cancelled appointment is frozen; anything
// else (including declined, whose slot was freed) may move to a new slot.
func (a *AppointmentModel) CanReschedule() bool {
	return a.Status != StatusCompleted && a.Status != StatusCancelled
}

// Approve moves pending -> approved.
func (a *AppointmentModel) Approve() error {
	if a.Status != StatusPending {
		return helper.ErrInvalidTransition
	}
	a.Status = StatusApproved
	return nil
}

// Decline moves pending -> declined, freeing the slot.
func (a *AppointmentModel) Decline() error {
	if a.Status != StatusPending {
		return helper.ErrInvalidTransition
	}
	a.Status = StatusDeclined
	return nil
}

// Cancel is allowed only while the request is still pending. Cancelling
// from any other state is rejected instead of silently accepted.
func (a *AppointmentModel) Cancel() error {
	if a.Status != StatusPending {
		return helper.ErrInvalidTransition
	}
	a.Status = StatusCancelled
	return nil
}

// Complete moves approved -> completed. Set when the counseling session
// bound to this appointment finishes.
func (a *AppointmentModel) Complete() error {
	if a.Status != StatusApproved {
		return helper.ErrInvalidTransition
	}
	a.Status = StatusCompleted
	return nil
}
