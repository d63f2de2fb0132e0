package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	authModel "guidanceku_backend/internals/features/users/auth/model"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

type RegisterInput struct {
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Role      string `json:"role" validate:"required"`

	// student profile fields (required when role=student)
	Course string `json:"course"`
	Year   int    `json:"year"`
}

// Register creates the User (pending, inactive) plus the role profile in one
// transaction. Nobody can log in until an admin approves the account.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	role, err := constants.ParseRole(input.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Role must be counselor or student")
	}
	if role == constants.RoleAdmin {
		// admins are seeded, never self-registered
		return helper.JsonError(c, fiber.StatusForbidden, "Admin accounts cannot self-register")
	}
	if role == constants.RoleStudent && strings.TrimSpace(input.Course) == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Course is required for student accounts")
	}

	var exists int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ? OR user_name = ?", input.Email, input.UserName).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing users")
	}
	if exists > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "This email or username is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:       input.UserName,
		Email:          input.Email,
		Password:       string(hashed),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Role:           role,
		ApprovalStatus: userModel.ApprovalPending,
		IsActive:       false,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		switch role {
		case constants.RoleStudent:
			year := input.Year
			if year <= 0 {
				year = 1
			}
			return tx.Create(&userModel.StudentModel{
				UserID: user.ID,
				Course: input.Course,
				Year:   year,
			}).Error
		case constants.RoleCounselor:
			return tx.Create(&userModel.CounselorModel{
				UserID: user.ID,
				Email:  user.Email,
			}).Error
		}
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Register failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	log.Printf("[SUCCESS] Registered %s (%s), waiting for approval\n", user.UserName, user.Role)
	return helper.JsonCreated(c, "Registration successful! Please wait for admin approval to log in.", fiber.Map{
		"id":              user.ID,
		"user_name":       user.UserName,
		"role":            user.Role,
		"approval_status": user.ApprovalStatus,
	})
}

/* ==========================
   LOGIN
========================== */

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"` // username or email
	Password   string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("user_name = ? OR email = ?", input.Identifier, input.Identifier).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	// approval gate: registration exists but the admin has not let it in yet
	switch user.ApprovalStatus {
	case userModel.ApprovalPending:
		return helper.JsonError(c, fiber.StatusForbidden, "Your account is awaiting admin approval")
	case userModel.ApprovalRejected:
		return helper.JsonError(c, fiber.StatusForbidden, "Your registration was rejected. Please contact the administrator.")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account is not active. Please contact the administrator.")
	}

	access, exp, err := GenerateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	refresh, err := GenerateRefreshToken(db, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})

	log.Printf("[SUCCESS] Login %s (%s)\n", user.UserName, user.Role)
	return helper.JsonOK(c, "Welcome back, "+user.UserName+"!", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"full_name": user.FullName(),
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))
	if tokenString == "" {
		tokenString = c.Cookies("access_token")
	}
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "No token supplied")
	}

	entry := authModel.TokenBlacklistModel{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(accessTTLDefault),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Failed to blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}

	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.RefreshToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "refresh_token is required")
	}

	claims, err := ParseRefreshToken(input.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	sub, _ := claims["sub"].(string)

	var stored authModel.RefreshTokenModel
	if err := db.Where("token = ? AND revoked = false AND expires_at > ?", input.RefreshToken, time.Now()).
		First(&stored).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	// rotate: revoke old, issue new pair
	access, _, err := GenerateAccessToken(&user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}
	var refresh string
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&stored).Update("revoked", true).Error; err != nil {
			return err
		}
		refresh, err = GenerateRefreshToken(tx, &user)
		return err
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate refresh token")
	}

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonDomainError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password updated successfully", nil)
}
