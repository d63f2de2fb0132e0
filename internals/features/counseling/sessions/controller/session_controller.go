package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	apptModel "guidanceku_backend/internals/features/counseling/appointments/model"
	followUpModel "guidanceku_backend/internals/features/counseling/followups/model"
	"guidanceku_backend/internals/features/counseling/sessions/dto"
	"guidanceku_backend/internals/features/counseling/sessions/model"
	"guidanceku_backend/internals/features/counseling/sessions/service"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

func (sc *SessionController) counselorForUser(userID uuid.UUID) (*userModel.CounselorModel, error) {
	var counselor userModel.CounselorModel
	if err := sc.DB.First(&counselor, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &counselor, nil
}

// loadOwnedSession fetches the session and checks the caller is the
// counselor running it (admins pass too).
func (sc *SessionController) loadOwnedSession(c *fiber.Ctx) (*model.SessionModel, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var session model.SessionModel
	if err := sc.DB.First(&session, "id = ?", id).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		counselor, err := sc.counselorForUser(userID)
		if err != nil || counselor.ID != session.CounselorID {
			return nil, helper.JsonDomainError(c, helper.ErrPermission)
		}
	}
	return &session, nil
}

// GET /api/u/dashboard — role-aware counters for the landing page
func (sc *SessionController) Dashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, _ := helper.GetRoleFromToken(c)
	today := time.Now().Format("2006-01-02")

	switch role {
	case constants.RoleCounselor:
		counselor, err := sc.counselorForUser(userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Counselor profile not found")
		}
		var pendingAppts, todayAppts, activeSessions, pendingFollowUps int64
		if err := sc.DB.Model(&apptModel.AppointmentModel{}).
			Where("counselor_id = ? AND status = ?", counselor.ID, apptModel.StatusPending).
			Count(&pendingAppts).Error; err != nil {
			log.Println("[ERROR] Failed to count pending appointments:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		if err := sc.DB.Model(&apptModel.AppointmentModel{}).
			Where("counselor_id = ? AND date = ? AND status = ?", counselor.ID, today, apptModel.StatusApproved).
			Count(&todayAppts).Error; err != nil {
			log.Println("[ERROR] Failed to count today's appointments:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		if err := sc.DB.Model(&model.SessionModel{}).
			Where("counselor_id = ? AND status = ?", counselor.ID, model.SessionInProgress).
			Count(&activeSessions).Error; err != nil {
			log.Println("[ERROR] Failed to count active sessions:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		if err := sc.DB.Model(&followUpModel.FollowUpModel{}).
			Joins("JOIN guidance_sessions ON guidance_sessions.id = follow_ups.session_id").
			Where("guidance_sessions.counselor_id = ? AND follow_ups.completed = false", counselor.ID).
			Count(&pendingFollowUps).Error; err != nil {
			log.Println("[ERROR] Failed to count pending follow-ups:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}

		return helper.JsonOK(c, "Counselor dashboard", fiber.Map{
			"pending_appointments": pendingAppts,
			"today_appointments":   todayAppts,
			"active_sessions":      activeSessions,
			"pending_follow_ups":   pendingFollowUps,
		})

	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := sc.DB.First(&student, "user_id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		var upcomingAppts, totalSessions, completedSessions int64
		if err := sc.DB.Model(&apptModel.AppointmentModel{}).
			Where("student_id = ? AND status IN ? AND date >= ?",
				student.ID, apptModel.ActiveStatuses, today).
			Count(&upcomingAppts).Error; err != nil {
			log.Println("[ERROR] Failed to count upcoming appointments:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		if err := sc.DB.Model(&model.SessionModel{}).
			Where("student_id = ?", student.ID).Count(&totalSessions).Error; err != nil {
			log.Println("[ERROR] Failed to count sessions:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}
		if err := sc.DB.Model(&model.SessionModel{}).
			Where("student_id = ? AND status = ?", student.ID, model.SessionCompleted).
			Count(&completedSessions).Error; err != nil {
			log.Println("[ERROR] Failed to count completed sessions:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
		}

		return helper.JsonOK(c, "Student dashboard", fiber.Map{
			"upcoming_appointments": upcomingAppts,
			"total_sessions":        totalSessions,
			"completed_sessions":    completedSessions,
		})
	}

	// admins have their own dashboard under /api/a
	return helper.JsonDomainError(c, helper.ErrPermission)
}

// POST /api/u/appointments/:id/start-session — the counselor opens the
// session for an approved appointment
func (sc *SessionController) StartSessionFromAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	counselor, err := sc.counselorForUser(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Counselor profile not found")
	}

	var appt apptModel.AppointmentModel
	if err := sc.DB.First(&appt, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appt.CounselorID != counselor.ID {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	session, err := service.StartFromAppointment(sc.DB, &appt)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Session started", session)
}

// GET /api/u/sessions — role-scoped listing
func (sc *SessionController) GetSessions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, _ := helper.GetRoleFromToken(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := sc.DB.Model(&model.SessionModel{}).
		Preload("Student.User").Preload("Counselor.User")

	switch role {
	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := sc.DB.First(&student, "user_id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		q = q.Where("student_id = ?", student.ID)
	case constants.RoleCounselor:
		counselor, err := sc.counselorForUser(userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Counselor profile not found")
		}
		q = q.Where("counselor_id = ?", counselor.ID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if sType := c.Query("session_type"); sType != "" {
		q = q.Where("session_type = ?", sType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count sessions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sessions")
	}

	var sessions []model.SessionModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sessions).Error; err != nil {
		log.Println("[ERROR] Failed to fetch sessions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sessions")
	}

	return helper.JsonList(c, "Sessions fetched successfully", sessions,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/sessions/:id
func (sc *SessionController) GetSessionByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var session model.SessionModel
	if err := sc.DB.Preload("Student.User").Preload("Counselor.User").
		Preload("Appointment").
		First(&session, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
	}

	// students may read their own sessions, counselors theirs, admins all
	role, _ := helper.GetRoleFromToken(c)
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	switch role {
	case constants.RoleStudent:
		var student userModel.StudentModel
		if err := sc.DB.First(&student, "user_id = ?", userID).Error; err != nil || student.ID != session.StudentID {
			return helper.JsonDomainError(c, helper.ErrPermission)
		}
	case constants.RoleCounselor:
		counselor, err := sc.counselorForUser(userID)
		if err != nil || counselor.ID != session.CounselorID {
			return helper.JsonDomainError(c, helper.ErrPermission)
		}
	}

	return helper.JsonOK(c, "Session fetched successfully", session)
}

// POST /api/u/sessions/:id/start — starts a session that was created
// scheduled. Starting from any other state leaves the row untouched.
func (sc *SessionController) StartSession(c *fiber.Ctx) error {
	session, ferr := sc.loadOwnedSession(c)
	if session == nil {
		return ferr
	}

	if err := service.StartSession(sc.DB, session); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Session started", session)
}

// POST /api/u/sessions/:id/followup-session — opens the follow-up session
// for a completed session that has an uncompleted follow-up scheduled
func (sc *SessionController) StartFollowUpFromSession(c *fiber.Ctx) error {
	session, ferr := sc.loadOwnedSession(c)
	if session == nil {
		return ferr
	}
	if session.Status != model.SessionCompleted {
		return helper.JsonDomainError(c, helper.ErrInvalidTransition)
	}

	var followUp followUpModel.FollowUpModel
	if err := sc.DB.
		Where("session_id = ? AND completed = false", session.ID).
		Order("scheduled_date ASC").
		First(&followUp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No pending follow-up for this session")
	}

	followUpSession, err := service.StartFollowUpSession(sc.DB, &followUp)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonCreated(c, "Follow-up session started", followUpSession)
}

// PUT /api/u/sessions/:id/end — completes a running session. Ending a
// session that is not running answers with the unchanged row.
func (sc *SessionController) EndSession(c *fiber.Ctx) error {
	session, ferr := sc.loadOwnedSession(c)
	if session == nil {
		return ferr
	}

	var input dto.EndSessionInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if err := service.EndSession(sc.DB, session, input.Outcome()); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Session ended", session)
}

// PUT /api/u/sessions/:id/cancel
func (sc *SessionController) CancelSession(c *fiber.Ctx) error {
	session, ferr := sc.loadOwnedSession(c)
	if session == nil {
		return ferr
	}

	if err := service.CancelSession(sc.DB, session); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Session cancelled", session)
}
