package model

import (
	"time"

	"github.com/google/uuid"

	apptModel "guidanceku_backend/internals/features/counseling/appointments/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

const (
	SessionScheduled  = "scheduled"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

const (
	TypeInitial  = "initial"
	TypeFollowUp = "follow_up"
)

// SessionModel is one counseling session. Initial sessions are bound to the
// appointment that produced them; follow-up sessions stand on their own.
type SessionModel struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	AppointmentID *uuid.UUID                  `gorm:"type:uuid;uniqueIndex" json:"appointment_id,omitempty"`
	Appointment   *apptModel.AppointmentModel `gorm:"foreignKey:AppointmentID;constraint:OnDelete:SET NULL" json:"appointment,omitempty"`
	StudentID     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"student_id"`
	Student       userModel.StudentModel      `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	CounselorID   uuid.UUID                   `gorm:"type:uuid;not null;index" json:"counselor_id"`
	Counselor     userModel.CounselorModel    `gorm:"foreignKey:CounselorID;constraint:OnDelete:CASCADE" json:"counselor,omitempty"`
	SessionType   string                      `gorm:"type:varchar(10);not null;default:'initial'" json:"session_type"`
	Status        string                      `gorm:"type:varchar(12);not null;default:'scheduled';index" json:"status"`
	StartedAt     *time.Time                  `json:"started_at,omitempty"`
	EndedAt       *time.Time                  `json:"ended_at,omitempty"`

	ProblemStatement string `gorm:"type:text" json:"problem_statement"`
	Recommendations  string `gorm:"type:text" json:"recommendations"`
	SessionNotes     string `gorm:"type:text" json:"session_notes"`
	ActionItems      string `gorm:"type:text" json:"action_items"`
	NextSteps        string `gorm:"type:text" json:"next_steps"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SessionModel) TableName() string {
	return "guidance_sessions"
}

// Start moves scheduled -> in_progress and stamps the start time. Starting
// a session in any other state is a no-op; the caller decides whether to
// log it. Returns true when the transition fired.
func (s *SessionModel) Start(now time.Time) bool {
	if s.Status != SessionScheduled {
		return false
	}
	s.Status = SessionInProgress
	s.StartedAt = &now
	return true
}

// Outcome carries the closing details of a session. Every field is
// optional; blank fields leave the stored values alone.
type Outcome struct {
	ProblemStatement string
	Recommendations  string
	Notes            string
	ActionItems      string
	NextSteps        string
}

// End moves in_progress -> completed and stamps the end time. Ending from
// any other state is a no-op. Outcome fields overwrite the stored ones
// only when non-empty, so an end request with blank notes never wipes what
// the counselor already wrote.
func (s *SessionModel) End(now time.Time, outcome Outcome) bool {
	if s.Status != SessionInProgress {
		return false
	}
	s.Status = SessionCompleted
	s.EndedAt = &now
	if outcome.ProblemStatement != "" {
		s.ProblemStatement = outcome.ProblemStatement
	}
	if outcome.Recommendations != "" {
		s.Recommendations = outcome.Recommendations
	}
	if outcome.Notes != "" {
		s.SessionNotes = outcome.Notes
	}
	if outcome.ActionItems != "" {
		s.ActionItems = outcome.ActionItems
	}
	if outcome.NextSteps != "" {
		s.NextSteps = outcome.NextSteps
	}
	return true
}

// Cancel rejects cancelling a session that already completed or was
// cancelled. Unlike Start/End this is a hard error, not a no-op.
func (s *SessionModel) Cancel() error {
	if s.Status == SessionCompleted || s.Status == SessionCancelled {
		return helper.ErrInvalidTransition
	}
	s.Status = SessionCancelled
	return nil
}

// Duration of the session, zero until both timestamps exist.
func (s *SessionModel) Duration() time.Duration {
	if s.StartedAt == nil || s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(*s.StartedAt)
}
