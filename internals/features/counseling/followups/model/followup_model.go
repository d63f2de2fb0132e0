package model

import (
	"time"

	"github.com/google/uuid"

	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
)

// A follow-up is scheduled two weeks after the session that asked for it.
const OffsetDays = 14

// DefaultNote is written when the counselor flags follow_up_needed without
// giving a note of their own.
const DefaultNote = "Follow-up session scheduled based on interview form"

type FollowUpModel struct {
	ID        uuid.UUID                 `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionID uuid.UUID                 `gorm:"type:uuid;not null;index" json:"session_id"`
	Session   sessionModel.SessionModel `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"session,omitempty"`

	ScheduledDate time.Time `gorm:"type:date;not null" json:"scheduled_date"`
	Notes         string    `gorm:"type:text;not null" json:"notes"`
	Completed     bool      `gorm:"not null;default:false" json:"completed"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FollowUpModel) TableName() string {
	return "follow_ups"
}

// ScheduleDate computes the follow-up date from the reference day,
// truncated to midnight so the TIME-less date column stays clean.
func ScheduleDate(from time.Time) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, OffsetDays)
}

// NewFromSession builds the follow-up row for a session, applying the
// default note when none was provided.
func NewFromSession(sessionID uuid.UUID, from time.Time, notes string) *FollowUpModel {
	if notes == "" {
		notes = DefaultNote
	}
	return &FollowUpModel{
		SessionID:     sessionID,
		ScheduledDate: ScheduleDate(from),
		Notes:         notes,
	}
}
