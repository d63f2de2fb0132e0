package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	"guidanceku_backend/internals/features/counseling/followups/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type FollowUpController struct {
	DB *gorm.DB
}

func NewFollowUpController(db *gorm.DB) *FollowUpController {
	return &FollowUpController{DB: db}
}

// GET /api/u/followups — counselors see the follow-ups of their own
// sessions, admins see everything
func (fc *FollowUpController) GetFollowUps(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	role, _ := helper.GetRoleFromToken(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := fc.DB.Model(&model.FollowUpModel{}).Preload("Session")

	if role == constants.RoleCounselor {
		var counselor userModel.CounselorModel
		if err := fc.DB.First(&counselor, "user_id = ?", userID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Counselor profile not found")
		}
		q = q.Joins("JOIN guidance_sessions ON guidance_sessions.id = follow_ups.session_id").
			Where("guidance_sessions.counselor_id = ?", counselor.ID)
	}

	if pending := c.Query("pending"); pending == "true" {
		q = q.Where("follow_ups.completed = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count follow-ups:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve follow-ups")
	}

	var followUps []model.FollowUpModel
	if err := q.Order("scheduled_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&followUps).Error; err != nil {
		log.Println("[ERROR] Failed to fetch follow-ups:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve follow-ups")
	}

	return helper.JsonList(c, "Follow-ups fetched successfully", followUps,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PUT /api/u/followups/:id/complete — close a follow-up without a session
func (fc *FollowUpController) CompleteFollowUp(c *fiber.Ctx) error {
	followUp, ferr := fc.loadOwnedFollowUp(c)
	if followUp == nil {
		return ferr
	}

	res := fc.DB.Model(&model.FollowUpModel{}).
		Where("id = ? AND completed = false", followUp.ID).
		Update("completed", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to complete follow-up")
	}
	if res.RowsAffected == 0 {
		return helper.JsonDomainError(c, helper.ErrInvalidTransition)
	}
	followUp.Completed = true

	return helper.JsonUpdated(c, "Follow-up completed", followUp)
}

func (fc *FollowUpController) loadOwnedFollowUp(c *fiber.Ctx) (*model.FollowUpModel, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var followUp model.FollowUpModel
	if err := fc.DB.Preload("Session").First(&followUp, "id = ?", id).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Follow-up not found")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return nil, helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		var counselor userModel.CounselorModel
		if err := fc.DB.First(&counselor, "user_id = ?", userID).Error; err != nil ||
			counselor.ID != followUp.Session.CounselorID {
			return nil, helper.JsonDomainError(c, helper.ErrPermission)
		}
	}
	return &followUp, nil
}
