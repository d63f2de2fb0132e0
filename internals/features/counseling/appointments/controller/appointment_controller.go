package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	"guidanceku_backend/internals/features/counseling/appointments/dto"
	"guidanceku_backend/internals/features/counseling/appointments/model"
	"guidanceku_backend/internals/features/counseling/appointments/service"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

var validate = validator.New()

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

/* ==========================
   LOOKUPS
========================== */

func (ac *AppointmentController) studentForUser(userID uuid.UUID) (*userModel.StudentModel, error) {
	var student userModel.StudentModel
	if err := ac.DB.First(&student, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (ac *AppointmentController) counselorForUser(userID uuid.UUID) (*userModel.CounselorModel, error) {
	var counselor userModel.CounselorModel
	if err := ac.DB.First(&counselor, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &counselor, nil
}

// isParty reports whether the caller owns either side of the appointment.
func (ac *AppointmentController) isParty(c *fiber.Ctx, appt *model.AppointmentModel) bool {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	role, _ := helper.GetRoleFromToken(c)
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleStudent:
		student, err := ac.studentForUser(userID)
		return err == nil && student.ID == appt.StudentID
	case constants.RoleCounselor:
		counselor, err := ac.counselorForUser(userID)
		return err == nil && counselor.ID == appt.CounselorID
	}
	return false
}

/* ==========================
   CREATE / LIST / DETAIL
========================== */

// POST /api/u/appointments — students request a slot
func (ac *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var input dto.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	counselorID, date, tod, err := input.Parse()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	student, err := ac.studentForUser(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only students with a profile can book appointments")
	}

	var counselor userModel.CounselorModel
	if err := ac.DB.First(&counselor, "id = ?", counselorID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Counselor not found")
	}

	appt, err := service.RequestAppointment(ac.DB, student.ID, counselor.ID, date, tod, input.Purpose)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	log.Printf("[SUCCESS] Appointment %s requested for counselor %s\n", appt.ID, counselor.ID)
	return helper.JsonCreated(c, "Appointment requested successfully", appt)
}

// GET /api/u/appointments — scoped by role: students and counselors see
// their own, admins see everything
func (ac *AppointmentController) GetAppointments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, _ := helper.GetRoleFromToken(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ac.DB.Model(&model.AppointmentModel{}).
		Preload("Student.User").Preload("Counselor.User")

	switch role {
	case constants.RoleStudent:
		student, err := ac.studentForUser(userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		q = q.Where("student_id = ?", student.ID)
	case constants.RoleCounselor:
		counselor, err := ac.counselorForUser(userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Counselor profile not found")
		}
		q = q.Where("counselor_id = ?", counselor.ID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		q = q.Where("date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count appointments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve appointments")
	}

	var appts []model.AppointmentModel
	if err := q.Order("date ASC, time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&appts).Error; err != nil {
		log.Println("[ERROR] Failed to fetch appointments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve appointments")
	}

	return helper.JsonList(c, "Appointments fetched successfully", appts,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/appointments/:id
func (ac *AppointmentController) GetAppointmentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var appt model.AppointmentModel
	if err := ac.DB.Preload("Student.User").Preload("Counselor.User").
		First(&appt, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	if !ac.isParty(c, &appt) {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	return helper.JsonOK(c, "Appointment fetched successfully", appt)
}

/* ==========================
   TRANSITIONS
========================== */

// load + guard ownership for counselor decisions
func (ac *AppointmentController) loadForCounselor(c *fiber.Ctx) (*model.AppointmentModel, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	counselor, err := ac.counselorForUser(userID)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Counselor profile not found")
	}

	var appt model.AppointmentModel
	if err := ac.DB.First(&appt, "id = ?", id).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appt.CounselorID != counselor.ID {
		return nil, helper.JsonDomainError(c, helper.ErrPermission)
	}
	return &appt, nil
}

// PUT /api/u/appointments/:id/approve — counselor accepts the request
func (ac *AppointmentController) ApproveAppointment(c *fiber.Ctx) error {
	appt, ferr := ac.loadForCounselor(c)
	if appt == nil {
		return ferr
	}
	if err := service.UpdateStatus(ac.DB, appt, (*model.AppointmentModel).Approve); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Appointment approved", appt)
}

// PUT /api/u/appointments/:id/decline
func (ac *AppointmentController) DeclineAppointment(c *fiber.Ctx) error {
	appt, ferr := ac.loadForCounselor(c)
	if appt == nil {
		return ferr
	}
	if err := service.UpdateStatus(ac.DB, appt, (*model.AppointmentModel).Decline); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Appointment declined", appt)
}

// PUT /api/u/appointments/:id/cancel — the student may withdraw a request
// while it is still pending
func (ac *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	student, err := ac.studentForUser(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student profile not found")
	}

	var appt model.AppointmentModel
	if err := ac.DB.First(&appt, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appt.StudentID != student.ID {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	if err := service.UpdateStatus(ac.DB, &appt, (*model.AppointmentModel).Cancel); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Appointment cancelled", appt)
}

// PUT /api/u/appointments/:id/reschedule — the student moves the slot;
// all booking rules run again
func (ac *AppointmentController) RescheduleAppointment(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	student, err := ac.studentForUser(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student profile not found")
	}

	var input dto.RescheduleAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	date, tod, err := input.Parse()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var appt model.AppointmentModel
	if err := ac.DB.First(&appt, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appt.StudentID != student.ID {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	if err := service.Reschedule(ac.DB, &appt, date, tod); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Appointment rescheduled", appt)
}
