package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	"guidanceku_backend/internals/features/users/user/dto"
	"guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/u/students — visible to counselors and admins
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := sc.DB.Model(&model.StudentModel{}).Preload("User")
	if course := c.Query("course"); course != "" {
		q = q.Where("course ILIKE ?", "%"+course+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var students []model.StudentModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		log.Println("[ERROR] Failed to fetch students:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	return helper.JsonList(c, "Students fetched successfully", students,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/students/:id
func (sc *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var student model.StudentModel
	if err := sc.DB.Preload("User").First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonOK(c, "Student fetched successfully", student)
}

// PUT /api/u/students/:id — admins edit anyone, a student edits only themselves
func (sc *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var input dto.UpdateStudentInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	role, _ := helper.GetRoleFromToken(c)
	if role == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || student.UserID != userID {
			return helper.JsonDomainError(c, helper.ErrPermission)
		}
	}

	student.Course = input.Course
	student.Year = input.Year
	student.ContactNumber = input.ContactNumber
	student.ReasonForReferral = input.ReasonForReferral
	if err := sc.DB.Save(&student).Error; err != nil {
		log.Println("[ERROR] Failed to update student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helper.JsonUpdated(c, "Student updated successfully", student)
}
