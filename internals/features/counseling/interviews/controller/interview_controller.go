package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	"guidanceku_backend/internals/features/counseling/interviews/dto"
	"guidanceku_backend/internals/features/counseling/interviews/model"
	"guidanceku_backend/internals/features/counseling/interviews/service"
	sessionModel "guidanceku_backend/internals/features/counseling/sessions/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

var validate = validator.New()

type InterviewController struct {
	DB *gorm.DB
}

func NewInterviewController(db *gorm.DB) *InterviewController {
	return &InterviewController{DB: db}
}

// ownsInterview checks the caller runs the session behind the form.
func (ic *InterviewController) ownsInterview(c *fiber.Ctx, interview *model.InterviewModel) bool {
	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleAdmin {
		return true
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	var counselor userModel.CounselorModel
	if err := ic.DB.First(&counselor, "user_id = ?", userID).Error; err != nil {
		return false
	}
	var session sessionModel.SessionModel
	if err := ic.DB.First(&session, "id = ?", interview.SessionID).Error; err != nil {
		return false
	}
	return session.CounselorID == counselor.ID
}

// GET /api/u/interviews/:id
func (ic *InterviewController) GetInterviewByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var interview model.InterviewModel
	if err := ic.DB.Preload("Session").First(&interview, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Interview not found")
	}
	if !ic.ownsInterview(c, &interview) {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	return helper.JsonOK(c, "Interview fetched successfully", interview)
}

// GET /api/u/sessions/:id/interview — the form that belongs to a session
func (ic *InterviewController) GetInterviewBySession(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var interview model.InterviewModel
	if err := ic.DB.First(&interview, "session_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No interview form for this session")
	}
	if !ic.ownsInterview(c, &interview) {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	return helper.JsonOK(c, "Interview fetched successfully", interview)
}

// GET /api/u/students/:id/interviews — a student's intake history,
// newest first
func (ic *InterviewController) GetInterviewsByStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var interviews []model.InterviewModel
	if err := ic.DB.
		Joins("JOIN guidance_sessions ON guidance_sessions.id = interviews.session_id").
		Where("guidance_sessions.student_id = ?", id).
		Order("interviews.created_at DESC").
		Find(&interviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve interviews")
	}

	return helper.JsonOK(c, "Interviews fetched successfully", fiber.Map{
		"total":      len(interviews),
		"interviews": interviews,
	})
}

// PUT /api/u/interviews/:id — submit or revise the form. Submitting closes
// the running session and schedules a follow-up when requested.
func (ic *InterviewController) SubmitInterview(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var input dto.SubmitInterviewInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var interview model.InterviewModel
	if err := ic.DB.First(&interview, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Interview not found")
	}
	if !ic.ownsInterview(c, &interview) {
		return helper.JsonDomainError(c, helper.ErrPermission)
	}

	if err := service.SubmitInterviewForm(ic.DB, &interview, &input); err != nil {
		return helper.JsonDomainError(c, err)
	}
	return helper.JsonUpdated(c, "Interview form submitted", interview)
}
