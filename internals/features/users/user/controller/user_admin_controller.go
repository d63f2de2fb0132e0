package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// GET /api/a/users
func (uc *UserAdminController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&model.UserModel{})
	if status := c.Query("approval_status"); status != "" {
		q = q.Where("approval_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.JsonList(c, "Users fetched successfully", users,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/a/users/search?q=nameOrEmail
func (uc *UserAdminController) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query must not be empty")
	}

	var users []model.UserModel
	if err := uc.DB.
		Where("user_name ILIKE ? OR email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?",
			"%"+query+"%", "%"+query+"%", "%"+query+"%", "%"+query+"%").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] SearchUsers failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search users")
	}

	return helper.JsonOK(c, "Search results", fiber.Map{
		"total": len(users),
		"users": users,
	})
}

// PUT /api/a/users/:id/approve — lets a pending registration in
func (uc *UserAdminController) ApproveUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	user.ApprovalStatus = model.ApprovalApproved
	user.IsActive = true
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Failed to approve user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve user")
	}

	log.Printf("[SUCCESS] User %s approved\n", user.UserName)
	return helper.JsonUpdated(c, "User "+user.UserName+" has been approved", user)
}

// PUT /api/a/users/:id/reject
func (uc *UserAdminController) RejectUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	user.ApprovalStatus = model.ApprovalRejected
	user.IsActive = false
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Failed to reject user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject user")
	}

	return helper.JsonUpdated(c, "User "+user.UserName+" has been rejected", user)
}

// DELETE /api/a/users/:id — hard delete, cascades to the role profile
func (uc *UserAdminController) DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	tx := uc.DB.Delete(&model.UserModel{}, "id = ?", id)
	if tx.Error != nil {
		log.Println("[ERROR] Failed to delete user:", tx.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully", fiber.Map{"id": id})
}

// GET /api/a/dashboard — admin counters
func (uc *UserAdminController) Dashboard(c *fiber.Ctx) error {
	var (
		totalUsers       int64
		activeStudents   int64
		activeCounselors int64
		pendingApprovals int64
	)

	if err := uc.DB.Model(&model.UserModel{}).Count(&totalUsers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}
	uc.DB.Model(&model.StudentModel{}).
		Joins("JOIN users ON users.id = students.user_id").
		Where("users.is_active = true").Count(&activeStudents)
	uc.DB.Model(&model.CounselorModel{}).
		Joins("JOIN users ON users.id = counselors.user_id").
		Where("users.is_active = true").Count(&activeCounselors)
	uc.DB.Model(&model.UserModel{}).
		Where("approval_status = ?", model.ApprovalPending).Count(&pendingApprovals)

	var recentUsers []model.UserModel
	uc.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)

	return helper.JsonOK(c, "Admin dashboard", fiber.Map{
		"total_users":       totalUsers,
		"active_students":   activeStudents,
		"active_counselors": activeCounselors,
		"pending_approvals": pendingApprovals,
		"recent_users":      recentUsers,
	})
}
