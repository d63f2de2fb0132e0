package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type CounselorController struct {
	DB *gorm.DB
}

func NewCounselorController(db *gorm.DB) *CounselorController {
	return &CounselorController{DB: db}
}

// GET /api/u/counselors — students pick a counselor from this list
func (cc *CounselorController) GetCounselors(c *fiber.Ctx) error {
	var counselors []model.CounselorModel
	if err := cc.DB.Preload("User").
		Joins("JOIN users ON users.id = counselors.user_id").
		Where("users.is_active = true").
		Order("users.first_name ASC").
		Find(&counselors).Error; err != nil {
		log.Println("[ERROR] Failed to fetch counselors:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve counselors")
	}

	return helper.JsonOK(c, "Counselors fetched successfully", fiber.Map{
		"total":      len(counselors),
		"counselors": counselors,
	})
}

// GET /api/u/counselors/:id
func (cc *CounselorController) GetCounselorByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var counselor model.CounselorModel
	if err := cc.DB.Preload("User").First(&counselor, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Counselor not found")
	}

	return helper.JsonOK(c, "Counselor fetched successfully", counselor)
}
