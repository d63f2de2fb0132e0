package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	"guidanceku_backend/internals/constants"
	"guidanceku_backend/internals/features/users/user/dto"
	"guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

var validate = validator.New()

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/u/me
func (pc *ProfileController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user model.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	resp := fiber.Map{"user": user}

	// attach the role profile when there is one
	switch user.Role {
	case constants.RoleStudent:
		var student model.StudentModel
		if err := pc.DB.First(&student, "user_id = ?", user.ID).Error; err == nil {
			resp["student"] = student
		}
	case constants.RoleCounselor:
		var counselor model.CounselorModel
		if err := pc.DB.First(&counselor, "user_id = ?", user.ID).Error; err == nil {
			resp["counselor"] = counselor
		}
	}

	return helper.JsonOK(c, "Profile fetched successfully", resp)
}

// PUT /api/u/me
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var input dto.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user model.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if input.Email != user.Email {
		var count int64
		pc.DB.Model(&model.UserModel{}).
			Where("email = ? AND id <> ?", input.Email, user.ID).
			Count(&count)
		if count > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already in use")
		}
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	if err := pc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Failed to update profile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	return helper.JsonUpdated(c, "Profile updated successfully", user)
}

// POST /api/u/me/picture — multipart upload, stored as a jpeg thumbnail
func (pc *ProfileController) UploadProfilePicture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field 'picture' is required")
	}

	var user model.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	path, err := helper.SaveProfilePicture(configs.MediaDir, fileHeader)
	if err != nil {
		log.Println("[ERROR] Failed to store profile picture:", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Uploaded file is not a valid image")
	}

	// replace, don't accumulate
	if user.ProfilePicture != nil {
		_ = helper.RemoveFileIfExists(*user.ProfilePicture)
	}

	user.ProfilePicture = &path
	if err := pc.DB.Save(&user).Error; err != nil {
		_ = helper.RemoveFileIfExists(path)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile picture")
	}

	return helper.JsonUpdated(c, "Profile picture updated", fiber.Map{"profile_picture": path})
}
